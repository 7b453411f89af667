package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harjot/proton/internal/app"
	"github.com/harjot/proton/internal/diagram"
	"github.com/harjot/proton/internal/store"
)

// runChat wires the collaborators and starts the chat TUI.
func runChat(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := openStore(cfg)
	if st != nil {
		defer st.Close()
	}

	resolvers, err := buildResolverFactory(cmd.Context(), cfg, st)
	if err != nil {
		return err
	}

	diagrams, err := diagram.New(cfg.Diagram)
	if err != nil {
		return err
	}

	var transcripts store.TranscriptRepo
	if st != nil {
		transcripts = st.Transcripts()
	}

	return app.Run(app.Options{
		Resolvers:   resolvers,
		Diagrams:    diagrams,
		Transcripts: transcripts,
		Grade:       cfg.Grade,
		Language:    cfg.Language,
	})
}
