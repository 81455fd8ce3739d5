// Command oowdump parses an HTML fragment and prints the wrapped node tree
// with the identities, attributes, and content seen through the wrapper
// layer. It is a debugging aid for inspecting how markup maps into
// wrappers; the library itself has no CLI surface.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elmordo/OwlInWeb/pkg/dom"
	"github.com/elmordo/OwlInWeb/pkg/host/htmldoc"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oowdump [file]",
		Short: "Dump the wrapped node tree of an HTML fragment",
		Long: `oowdump parses an HTML fragment and prints the wrapped node tree.

Each line shows the node kind, the identity assigned by the mapper, and
kind-specific detail (tag and attributes for elements, payload for text
and comments). Reads from stdin when no file is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDump,
	}

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("oowdump %s (%s)\n", version, commit)
		},
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	var markup []byte
	var err error
	if len(args) == 1 {
		markup, err = os.ReadFile(args[0])
	} else {
		markup, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	doc := htmldoc.New()
	mapper, err := dom.NewMapper(doc, nil)
	if err != nil {
		return err
	}
	root, err := mapper.CreateFragment(string(markup))
	if err != nil {
		return err
	}
	return dump(cmd.OutOrStdout(), root, 0)
}

// dump prints one node and recurses into element children.
func dump(w io.Writer, n dom.Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *dom.Element:
		fmt.Fprintf(w, "%s#%d Element <%s>%s\n", indent, v.ID(), v.TagName(), formatAttrs(v))
		children, err := v.Children()
		if err != nil {
			return err
		}
		for _, c := range children {
			if err := dump(w, c, depth+1); err != nil {
				return err
			}
		}
	case *dom.Text:
		fmt.Fprintf(w, "%s#%d Text %q\n", indent, v.ID(), v.Content())
	case *dom.Comment:
		fmt.Fprintf(w, "%s#%d Comment %q\n", indent, v.ID(), v.Content())
	case *dom.Attribute:
		fmt.Fprintf(w, "%s#%d Attribute %s=%q\n", indent, v.ID(), v.Name(), v.Value())
	default:
		fmt.Fprintf(w, "%s#%d %s\n", indent, n.ID(), n.Kind())
	}
	return nil
}

// formatAttrs renders an element's attributes for display.
func formatAttrs(e *dom.Element) string {
	list, err := e.Attributes().ToList()
	if err != nil || list.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range list {
		a, ok := n.(*dom.Attribute)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " %s=%q", a.Name(), a.Value())
	}
	return b.String()
}
