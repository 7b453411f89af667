package syllabus

// seedRecords is the built-in offline answer table, a handful of
// representative NCERT science topics per class. Order matters: Match
// returns the first hit.
var seedRecords = []Record{
	// Class 6
	{
		Grade:    6,
		Keywords: []string{"shadow", "dark"},
		Topic:    "Shadows",
		AnswerEnglish: "A shadow is the dark patch formed when an opaque object blocks the path of light. " +
			"It is dark because light travels in straight lines and cannot bend around the object, " +
			"so no light reaches the region behind it.",
		AnswerPunjabi: "ਪਰਛਾਵਾਂ ਉਹ ਹਨੇਰਾ ਖੇਤਰ ਹੈ ਜੋ ਉਦੋਂ ਬਣਦਾ ਹੈ ਜਦੋਂ ਕੋਈ ਅਪਾਰਦਰਸ਼ੀ ਵਸਤੂ ਰੋਸ਼ਨੀ ਦਾ ਰਾਹ ਰੋਕ ਲੈਂਦੀ ਹੈ। " +
			"ਰੋਸ਼ਨੀ ਸਿੱਧੀ ਰੇਖਾ ਵਿੱਚ ਚਲਦੀ ਹੈ, ਇਸ ਲਈ ਵਸਤੂ ਦੇ ਪਿੱਛੇ ਰੋਸ਼ਨੀ ਨਹੀਂ ਪਹੁੰਚਦੀ ਅਤੇ ਉਹ ਥਾਂ ਹਨੇਰੀ ਰਹਿੰਦੀ ਹੈ।",
		ImagePrompt: "simple diagram of light source, opaque object and shadow on a screen",
	},
	{
		Grade:    6,
		Keywords: []string{"photosynthesis", "plants make food", "make their food"},
		Topic:    "Photosynthesis",
		AnswerEnglish: "Photosynthesis is the process by which green plants make their own food. " +
			"Leaves use sunlight, water and carbon dioxide to prepare food, and oxygen is released. " +
			"The green pigment chlorophyll captures the sunlight.",
		AnswerPunjabi: "ਪ੍ਰਕਾਸ਼ ਸੰਸਲੇਸ਼ਣ ਉਹ ਕਿਰਿਆ ਹੈ ਜਿਸ ਰਾਹੀਂ ਹਰੇ ਪੌਦੇ ਆਪਣਾ ਭੋਜਨ ਆਪ ਬਣਾਉਂਦੇ ਹਨ। " +
			"ਪੱਤੇ ਧੁੱਪ, ਪਾਣੀ ਅਤੇ ਕਾਰਬਨ ਡਾਈਆਕਸਾਈਡ ਦੀ ਵਰਤੋਂ ਕਰਕੇ ਭੋਜਨ ਤਿਆਰ ਕਰਦੇ ਹਨ ਅਤੇ ਆਕਸੀਜਨ ਛੱਡਦੇ ਹਨ।",
		ImagePrompt: "labelled diagram of photosynthesis in a leaf with sunlight, water and carbon dioxide arrows",
	},
	{
		Grade:    6,
		Keywords: []string{"magnet", "compass"},
		Topic:    "Magnets",
		AnswerEnglish: "A magnet attracts materials like iron, nickel and cobalt. Every magnet has a north " +
			"pole and a south pole; like poles repel and unlike poles attract. A freely suspended magnet " +
			"always rests in the north-south direction, which is how a compass works.",
		AnswerPunjabi: "ਚੁੰਬਕ ਲੋਹਾ, ਨਿੱਕਲ ਅਤੇ ਕੋਬਾਲਟ ਵਰਗੀਆਂ ਵਸਤੂਆਂ ਨੂੰ ਖਿੱਚਦਾ ਹੈ। ਹਰ ਚੁੰਬਕ ਦੇ ਦੋ ਧਰੁਵ ਹੁੰਦੇ ਹਨ; " +
			"ਸਮਾਨ ਧਰੁਵ ਇੱਕ ਦੂਜੇ ਨੂੰ ਧੱਕਦੇ ਹਨ ਅਤੇ ਵਿਰੋਧੀ ਧਰੁਵ ਖਿੱਚਦੇ ਹਨ।",
		ImagePrompt: "bar magnet with labelled north and south poles and iron filings field lines",
	},
	{
		Grade:    6,
		Keywords: []string{"states of matter", "solid liquid gas", "evaporation"},
		Topic:    "States of matter",
		AnswerEnglish: "Matter exists in three main states: solid, liquid and gas. Solids have a fixed shape, " +
			"liquids take the shape of their container, and gases fill all the available space. " +
			"Heating can change one state into another, for example water evaporating into vapour.",
		AnswerPunjabi: "ਪਦਾਰਥ ਤਿੰਨ ਮੁੱਖ ਅਵਸਥਾਵਾਂ ਵਿੱਚ ਮਿਲਦਾ ਹੈ: ਠੋਸ, ਤਰਲ ਅਤੇ ਗੈਸ। ਠੋਸ ਦਾ ਆਕਾਰ ਨਿਸ਼ਚਿਤ ਹੁੰਦਾ ਹੈ, " +
			"ਤਰਲ ਆਪਣੇ ਭਾਂਡੇ ਦਾ ਆਕਾਰ ਲੈ ਲੈਂਦਾ ਹੈ ਅਤੇ ਗੈਸ ਸਾਰੀ ਥਾਂ ਭਰ ਦਿੰਦੀ ਹੈ।",
	},

	// Class 7
	{
		Grade:    7,
		Keywords: []string{"acid", "base", "litmus"},
		Topic:    "Acids and bases",
		AnswerEnglish: "Acids taste sour and turn blue litmus red; lemon juice and vinegar are acids. " +
			"Bases feel soapy and turn red litmus blue; baking soda is a base. Substances that are " +
			"neither acidic nor basic are called neutral.",
		AnswerPunjabi: "ਤੇਜ਼ਾਬ ਸੁਆਦ ਵਿੱਚ ਖੱਟੇ ਹੁੰਦੇ ਹਨ ਅਤੇ ਨੀਲੇ ਲਿਟਮਸ ਨੂੰ ਲਾਲ ਕਰ ਦਿੰਦੇ ਹਨ। ਖਾਰ ਲਾਲ ਲਿਟਮਸ ਨੂੰ ਨੀਲਾ ਕਰਦੇ ਹਨ। " +
			"ਜੋ ਪਦਾਰਥ ਨਾ ਤੇਜ਼ਾਬੀ ਹੋਣ ਨਾ ਖਾਰੀ, ਉਹ ਉਦਾਸੀਨ ਕਹਾਉਂਦੇ ਹਨ।",
	},
	{
		Grade:    7,
		Keywords: []string{"nutrition", "digestion", "digestive"},
		Topic:    "Nutrition in animals",
		AnswerEnglish: "Digestion is the breakdown of complex food into simpler substances the body can absorb. " +
			"In humans it happens in the digestive tract: mouth, food pipe, stomach, small intestine and " +
			"large intestine. Digested food is absorbed in the small intestine.",
		AnswerPunjabi: "ਪਾਚਨ ਉਹ ਕਿਰਿਆ ਹੈ ਜਿਸ ਵਿੱਚ ਗੁੰਝਲਦਾਰ ਭੋਜਨ ਸਰਲ ਪਦਾਰਥਾਂ ਵਿੱਚ ਟੁੱਟਦਾ ਹੈ। ਮਨੁੱਖ ਵਿੱਚ ਇਹ ਮੂੰਹ, " +
			"ਭੋਜਨ ਨਲੀ, ਮਿਹਦੇ ਅਤੇ ਅੰਤੜੀਆਂ ਵਿੱਚ ਹੁੰਦਾ ਹੈ। ਪਚਿਆ ਭੋਜਨ ਛੋਟੀ ਅੰਤੜੀ ਵਿੱਚ ਜਜ਼ਬ ਹੁੰਦਾ ਹੈ।",
		ImagePrompt: "labelled diagram of the human digestive system",
	},
	{
		Grade:    7,
		Keywords: []string{"heat", "conduction", "convection"},
		Topic:    "Heat transfer",
		AnswerEnglish: "Heat flows from a hotter object to a colder one. In solids it travels by conduction, " +
			"in liquids and gases by convection, and it can also travel through empty space by radiation, " +
			"which is how the Sun's heat reaches us.",
		AnswerPunjabi: "ਗਰਮੀ ਗਰਮ ਵਸਤੂ ਤੋਂ ਠੰਢੀ ਵਸਤੂ ਵੱਲ ਵਹਿੰਦੀ ਹੈ। ਠੋਸਾਂ ਵਿੱਚ ਇਹ ਚਾਲਨ ਰਾਹੀਂ, ਤਰਲਾਂ ਅਤੇ ਗੈਸਾਂ ਵਿੱਚ " +
			"ਸੰਵਹਿਣ ਰਾਹੀਂ ਅਤੇ ਖਾਲੀ ਥਾਂ ਵਿੱਚ ਵਿਕਿਰਨ ਰਾਹੀਂ ਚਲਦੀ ਹੈ।",
	},

	// Class 8
	{
		Grade:    8,
		Keywords: []string{"cell", "nucleus", "cytoplasm"},
		Topic:    "Cell structure",
		AnswerEnglish: "The cell is the basic structural unit of all living organisms. A typical cell has a " +
			"cell membrane, cytoplasm and a nucleus that controls its activities. Plant cells additionally " +
			"have a rigid cell wall and chloroplasts.",
		AnswerPunjabi: "ਸੈੱਲ ਸਾਰੇ ਜੀਵਾਂ ਦੀ ਮੁੱਢਲੀ ਇਕਾਈ ਹੈ। ਆਮ ਸੈੱਲ ਵਿੱਚ ਸੈੱਲ ਝਿੱਲੀ, ਸੈੱਲ ਦ੍ਰਵ ਅਤੇ ਨਿਊਕਲੀਅਸ ਹੁੰਦਾ ਹੈ " +
			"ਜੋ ਸੈੱਲ ਦੀਆਂ ਕਿਰਿਆਵਾਂ ਨੂੰ ਕਾਬੂ ਕਰਦਾ ਹੈ।",
		ImagePrompt: "labelled diagram of a plant cell and an animal cell side by side",
	},
	{
		Grade:    8,
		Keywords: []string{"force", "pressure"},
		Topic:    "Force and pressure",
		AnswerEnglish: "A force is a push or a pull on an object. It can change the object's speed, direction " +
			"or shape. Pressure is the force acting on a unit area; the same force over a smaller area " +
			"produces a larger pressure, which is why a sharp knife cuts easily.",
		AnswerPunjabi: "ਬਲ ਕਿਸੇ ਵਸਤੂ ਉੱਤੇ ਧੱਕਾ ਜਾਂ ਖਿੱਚ ਹੈ। ਇਹ ਵਸਤੂ ਦੀ ਗਤੀ, ਦਿਸ਼ਾ ਜਾਂ ਆਕਾਰ ਬਦਲ ਸਕਦਾ ਹੈ। " +
			"ਇਕਾਈ ਖੇਤਰਫਲ ਉੱਤੇ ਲੱਗਿਆ ਬਲ ਦਾਬ ਕਹਾਉਂਦਾ ਹੈ।",
	},
	{
		Grade:    8,
		Keywords: []string{"friction"},
		Topic:    "Friction",
		AnswerEnglish: "Friction is the force that opposes motion between two surfaces in contact. It lets us " +
			"walk and lets vehicles grip the road, but it also wears out soles and machine parts. " +
			"Friction can be reduced with lubricants or wheels.",
		AnswerPunjabi: "ਰਗੜ ਉਹ ਬਲ ਹੈ ਜੋ ਦੋ ਸਤਹਾਂ ਵਿਚਕਾਰ ਗਤੀ ਦਾ ਵਿਰੋਧ ਕਰਦਾ ਹੈ। ਇਸੇ ਕਰਕੇ ਅਸੀਂ ਤੁਰ ਸਕਦੇ ਹਾਂ, " +
			"ਪਰ ਇਹ ਜੁੱਤੀਆਂ ਅਤੇ ਮਸ਼ੀਨਾਂ ਦੇ ਪੁਰਜ਼ੇ ਵੀ ਘਸਾ ਦਿੰਦਾ ਹੈ।",
	},

	// Class 9
	{
		Grade:    9,
		Keywords: []string{"atom", "molecule", "proton", "electron"},
		Topic:    "Structure of the atom",
		AnswerEnglish: "An atom is the smallest unit of an element. It has a tiny central nucleus containing " +
			"protons and neutrons, with electrons revolving around it in shells. Atoms combine to form " +
			"molecules.",
		AnswerPunjabi: "ਪਰਮਾਣੂ ਕਿਸੇ ਤੱਤ ਦੀ ਸਭ ਤੋਂ ਛੋਟੀ ਇਕਾਈ ਹੈ। ਇਸਦੇ ਕੇਂਦਰ ਵਿੱਚ ਪ੍ਰੋਟਾਨ ਅਤੇ ਨਿਊਟ੍ਰਾਨ ਵਾਲਾ ਨਿਊਕਲੀਅਸ " +
			"ਹੁੰਦਾ ਹੈ ਅਤੇ ਇਲੈਕਟ੍ਰਾਨ ਇਸਦੇ ਦੁਆਲੇ ਘੁੰਮਦੇ ਹਨ।",
		ImagePrompt: "Bohr model of an atom with nucleus and electron shells",
	},
	{
		Grade:    9,
		Keywords: []string{"gravitation", "gravity", "free fall"},
		Topic:    "Gravitation",
		AnswerEnglish: "Gravitation is the force of attraction between any two bodies with mass. The Earth " +
			"pulls every object towards its centre; this pull gives falling bodies the same acceleration " +
			"of about 9.8 m/s^2 regardless of their mass.",
		AnswerPunjabi: "ਗੁਰੂਤਾਕਰਸ਼ਣ ਕਿਸੇ ਵੀ ਦੋ ਪਿੰਡਾਂ ਵਿਚਕਾਰ ਖਿੱਚ ਦਾ ਬਲ ਹੈ। ਧਰਤੀ ਹਰ ਵਸਤੂ ਨੂੰ ਆਪਣੇ ਕੇਂਦਰ ਵੱਲ ਖਿੱਚਦੀ ਹੈ, " +
			"ਅਤੇ ਡਿੱਗਦੀਆਂ ਵਸਤੂਆਂ ਦੀ ਪ੍ਰਵੇਗ ਲਗਭਗ 9.8 m/s^2 ਹੁੰਦੀ ਹੈ।",
	},
	{
		Grade:    9,
		Keywords: []string{"tissue", "xylem", "phloem"},
		Topic:    "Tissues",
		AnswerEnglish: "A tissue is a group of similar cells working together to perform a function. In plants, " +
			"xylem carries water and phloem carries food; in animals, muscular, nervous, epithelial and " +
			"connective tissues build the body.",
		AnswerPunjabi: "ਟਿਸ਼ੂ ਇੱਕੋ ਜਿਹੇ ਸੈੱਲਾਂ ਦਾ ਸਮੂਹ ਹੈ ਜੋ ਮਿਲ ਕੇ ਇੱਕ ਕੰਮ ਕਰਦੇ ਹਨ। ਪੌਦਿਆਂ ਵਿੱਚ ਜ਼ਾਈਲਮ ਪਾਣੀ ਅਤੇ " +
			"ਫਲੋਇਮ ਭੋਜਨ ਪਹੁੰਚਾਉਂਦਾ ਹੈ।",
	},

	// Class 10
	{
		Grade:    10,
		Keywords: []string{"electricity", "ohm", "current", "resistance"},
		Topic:    "Electricity",
		AnswerEnglish: "Electric current is the flow of charge through a conductor. Ohm's law states that the " +
			"current through a conductor is proportional to the potential difference across it: V = IR, " +
			"where R is the resistance.",
		AnswerPunjabi: "ਬਿਜਲਈ ਧਾਰਾ ਚਾਲਕ ਵਿੱਚ ਚਾਰਜ ਦਾ ਵਹਾਅ ਹੈ। ਓਹਮ ਦੇ ਨਿਯਮ ਅਨੁਸਾਰ ਧਾਰਾ ਪੋਟੈਂਸ਼ਲ ਅੰਤਰ ਦੇ " +
			"ਅਨੁਪਾਤੀ ਹੁੰਦੀ ਹੈ: V = IR।",
		ImagePrompt: "simple electric circuit diagram with battery, bulb, switch and ammeter",
	},
	{
		Grade:    10,
		Keywords: []string{"reflection", "mirror", "light"},
		Topic:    "Light: reflection",
		AnswerEnglish: "Reflection is the bouncing back of light from a surface. The angle of incidence always " +
			"equals the angle of reflection. Plane mirrors form virtual, erect images of the same size as " +
			"the object; curved mirrors can magnify or diminish.",
		AnswerPunjabi: "ਪਰਾਵਰਤਨ ਰੋਸ਼ਨੀ ਦਾ ਕਿਸੇ ਸਤ੍ਹਾ ਤੋਂ ਵਾਪਸ ਮੁੜਨਾ ਹੈ। ਆਪਤਨ ਕੋਣ ਹਮੇਸ਼ਾ ਪਰਾਵਰਤਨ ਕੋਣ ਦੇ ਬਰਾਬਰ ਹੁੰਦਾ ਹੈ।",
		ImagePrompt: "ray diagram of reflection on a plane mirror with labelled angles",
	},
	{
		Grade:    10,
		Keywords: []string{"life process", "respiration"},
		Topic:    "Life processes",
		AnswerEnglish: "Respiration is the process by which cells break down glucose to release energy. " +
			"Aerobic respiration uses oxygen and releases more energy; anaerobic respiration happens " +
			"without oxygen, as in our muscles during heavy exercise.",
		AnswerPunjabi: "ਸਾਹ ਕਿਰਿਆ ਵਿੱਚ ਸੈੱਲ ਗਲੂਕੋਜ਼ ਨੂੰ ਤੋੜ ਕੇ ਊਰਜਾ ਛੱਡਦੇ ਹਨ। ਆਕਸੀਜਨ ਵਾਲੀ ਸਾਹ ਕਿਰਿਆ ਵੱਧ ਊਰਜਾ ਦਿੰਦੀ ਹੈ।",
	},
}
