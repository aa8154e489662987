package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mverbeek/verbuig/internal/lexicon"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List all verbs in the lexicon",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)

		fmt.Fprintln(w, "INFINITIEF\tBETEKENIS\tSOORT\tO.T.T. (ik)\tO.V.T. (ik)\tPERFECTUM")

		for _, verb := range lexicon.AllVerbs() {
			present, _ := verb.FiniteForm(lexicon.Present, lexicon.Ik)
			past, _ := verb.FiniteForm(lexicon.SimplePast, lexicon.Ik)

			var auxParts []string
			for _, aux := range verb.Auxiliaries {
				form, _ := lexicon.AuxForm(aux, lexicon.Present, lexicon.Hij)
				auxParts = append(auxParts, form)
			}
			perfect := strings.Join(auxParts, "/") + " " + verb.PastParticiple

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				verb.Infinitive, verb.Gloss, string(verb.Kind), present, past, perfect)
		}

		return w.Flush()
	},
}
