package cli

import (
	"strings"

	"giftcard/internal/domain"

	"github.com/spf13/cobra"
)

func newDescribeCommand(opts *options) *cobra.Command {
	var name, prompt string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Generate descriptions, tags and name suggestions",
		Long: `Generate the copy bundle for a gift card and print it as JSON.

Examples:
  giftcardctl describe --name "Sunset Cafe" --prompt "20% off birthday promo"
  giftcardctl describe --tier tier2 --name "Spa Day" --prompt "mother's day"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, pipeline, err := opts.pipeline(cmd)
			if err != nil {
				return err
			}
			req := domain.CopyRequest{
				GiftcardName: strings.TrimSpace(name),
				Prompt:       strings.TrimSpace(prompt),
			}
			if err := domain.Validate(req); err != nil {
				return err
			}
			res, err := pipeline.GenerateCopy(ctx, cfg, req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Gift card name")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Free-text promotion prompt")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}
