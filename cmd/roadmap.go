package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/roadmap"
	roadmapscreen "github.com/abhisek/learnpath/internal/screens/roadmap"
	"github.com/abhisek/learnpath/internal/views"
)

// fs is the filesystem roadmap files are read from.
var fs afero.Fs = afero.NewOsFs()

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Work with exported roadmaps",
}

var roadmapShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print an exported learning-roadmap.md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fs.Open(args[0])
		if err != nil {
			return fmt.Errorf("open roadmap: %w", err)
		}
		defer f.Close()

		r, err := roadmap.ParseMarkdown(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		rm, _ := views.BuildRoadmap(r)

		width, _ := cmd.Flags().GetInt("width")
		_, err = lipgloss.Fprintln(cmd.OutOrStdout(), roadmapscreen.Render(rm, width))
		return err
	},
}

func init() {
	roadmapShowCmd.Flags().Int("width", 100, "Output width in columns")
	roadmapCmd.AddCommand(roadmapShowCmd)
}
