package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	stationio "github.com/railkit/railsignal/pkg/io"
	"github.com/railkit/railsignal/pkg/network"
	"github.com/railkit/railsignal/pkg/railml"
)

// importCommand creates the import command for converting railML documents
// into the JSON interchange format.
func (c *CLI) importCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a railML document and write the station as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			p := newProgress(c.Logger)

			net, err := railml.ImportFile(input)
			if err != nil {
				return fmt.Errorf("import %s: %w", input, err)
			}
			p.done(fmt.Sprintf("Imported %d nodes, %d edges", net.NodeCount(), net.EdgeCount()))

			if output == "" {
				output = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
			}
			if err := stationio.ExportFile(net, output); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			printSuccess("Imported %s", StyleHighlight.Render(net.Name()))
			printFile(output)
			printNextStep("Analyze it", fmt.Sprintf("railsignal analyze %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with .json extension)")

	return cmd
}

// loadNetwork reads a station from either a railML document or a JSON
// interchange file, dispatching on the file extension.
func loadNetwork(path string) (*network.Network, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".railml":
		return railml.ImportFile(path)
	default:
		return stationio.ReadFile(path)
	}
}
