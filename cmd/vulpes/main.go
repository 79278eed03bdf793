// Command vulpes exposes the extraction library on the command line:
// extract text from local HTML, fetch pages over HTTP, and sanitize
// fragments.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/vulpes-browser/vulpes"
)

var jsonOutput bool

func main() {
	root := &cobra.Command{
		Use:           "vulpes",
		Short:         "Extract readable text from HTML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of plain text")

	root.AddCommand(extractCmd(), fetchCmd(), cleanCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vulpes:", err)
		os.Exit(1)
	}
}

// withLibrary runs fn inside an Init/Shutdown pair.
func withLibrary(fn func() error) error {
	if code := vulpes.Init(); !code.OK() {
		return fmt.Errorf("init failed: %s", code)
	}
	defer vulpes.Shutdown()
	return fn()
}

// readInput reads the named file, or stdin when no name is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func extractCmd() *cobra.Command {
	var titleOnly bool
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract visible text from an HTML file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			return withLibrary(func() error {
				var res *vulpes.TextResult
				if titleOnly {
					res = vulpes.ExtractTitle(input)
				} else {
					res = vulpes.ExtractText(input)
				}
				defer res.Release()
				if !res.Code.OK() {
					return fmt.Errorf("extract failed: %s", res.Code)
				}
				return emitText(cmd.OutOrStdout(), res.Text)
			})
		},
	}
	cmd.Flags().BoolVar(&titleOnly, "title", false, "extract only the document title")
	return cmd
}

func fetchCmd() *cobra.Command {
	var asText bool
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Fetch a URL and print the body, or its extracted text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(func() error {
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()

				res := vulpes.Fetch(ctx, args[0])
				defer res.Release()
				if !res.Code.OK() {
					return fmt.Errorf("fetch failed: %s", res.Code)
				}

				if asText {
					text := vulpes.ExtractText(res.Body)
					defer text.Release()
					if !text.Code.OK() {
						return fmt.Errorf("extract failed: %s", text.Code)
					}
					return emitText(cmd.OutOrStdout(), text.Text)
				}

				if jsonOutput {
					return emitJSON(cmd.OutOrStdout(), map[string]any{
						"status":       res.Status,
						"content_type": res.ContentType,
						"body":         string(res.Body),
					})
				}
				_, err := cmd.OutOrStdout().Write(res.Body)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&asText, "text", false, "extract text from the fetched body")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall request timeout")
	return cmd
}

func cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [file]",
		Short: "Sanitize an HTML fragment from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			return withLibrary(func() error {
				res := vulpes.CleanHTML(input)
				defer res.Release()
				if !res.Code.OK() {
					return fmt.Errorf("clean failed: %s", res.Code)
				}
				return emitText(cmd.OutOrStdout(), res.Text)
			})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return emitJSON(cmd.OutOrStdout(), map[string]string{"version": vulpes.Version()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), vulpes.Version())
			return nil
		},
	}
}

func emitText(w io.Writer, text []byte) error {
	if jsonOutput {
		return emitJSON(w, map[string]string{"text": string(text)})
	}
	_, err := fmt.Fprintln(w, string(text))
	return err
}

func emitJSON(w io.Writer, v any) error {
	out, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
