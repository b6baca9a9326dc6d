// Package respond exposes response assembly on the command line. Each
// command assembles a response from speech, card, and device flags and
// prints the finalized object as JSON.
package respond

import (
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/vocalis/adapter/cli"
	responseapp "github.com/felixgeelhaar/vocalis/internal/response/application"
	responsedomain "github.com/felixgeelhaar/vocalis/internal/response/domain"
	"github.com/spf13/cobra"
)

// Cmd is the respond command group
var Cmd = &cobra.Command{
	Use:   "respond",
	Short: "Assemble voice responses",
	Long:  `Assemble capability-aware voice responses from speech, card, and device data.`,
}

// turnFlags are the per-turn flags shared by all respond subcommands.
type turnFlags struct {
	session    string
	locale     string
	interfaces []string
}

func (f *turnFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.session, "session", "", "session id (generated when empty)")
	cmd.Flags().StringVarP(&f.locale, "locale", "l", "", "turn locale")
	cmd.Flags().StringSliceVar(&f.interfaces, "interface", nil, "device interface the response may target (repeatable)")
}

func (f *turnFlags) turn() responseapp.Turn {
	return cli.NewTurn(f.session, f.locale, f.interfaces)
}

// dataFlags are the response content flags shared by all respond subcommands.
type dataFlags struct {
	speech        string
	reprompt      string
	cardTitle     string
	cardText      string
	cardSmallURL  string
	cardLargeURL  string
	hint          string
}

func (f *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.speech, "speech", "s", "", "spoken output")
	cmd.Flags().StringVarP(&f.reprompt, "reprompt", "r", "", "reprompt spoken when the user stays silent")
	cmd.Flags().StringVar(&f.cardTitle, "card-title", "", "card title")
	cmd.Flags().StringVar(&f.cardText, "card-text", "", "card body text")
	cmd.Flags().StringVar(&f.cardSmallURL, "card-small-image", "", "small card image URL")
	cmd.Flags().StringVar(&f.cardLargeURL, "card-large-image", "", "large card image URL")
	cmd.Flags().StringVar(&f.hint, "hint", "", "hint shown on simple-template devices")
}

func (f *dataFlags) data() *responsedomain.Data {
	data := &responsedomain.Data{
		Speech: responsedomain.Speech{Output: f.speech, Reprompt: f.reprompt},
		Hint:   f.hint,
	}
	if f.cardTitle != "" || f.cardText != "" {
		data.Card = &responsedomain.Card{
			Title:         f.cardTitle,
			Output:        f.cardText,
			ImageSmallURL: f.cardSmallURL,
			ImageLargeURL: f.cardLargeURL,
		}
	}
	return data
}

func printResponse(resp responsedomain.Response) error {
	payload, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

func requireApp() (*cli.App, error) {
	app := cli.GetApp()
	if app == nil || app.Assembler == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}

func init() {
	Cmd.AddCommand(askCmd)
	Cmd.AddCommand(tellCmd)
	Cmd.AddCommand(permissionsCmd)
	Cmd.AddCommand(linkAccountCmd)
}
