package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"giftcard/internal/domain"

	"github.com/spf13/cobra"
)

func newImageCommand(opts *options) *cobra.Command {
	var name, description, output string
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Generate a background image",
		Long: `Generate an illustrative background for a gift card.

Without --output the JSON result (image_base64, media_type) is printed.

Examples:
  giftcardctl image --name "Sunset Cafe" --description "A warm cafe at dusk"
  giftcardctl image --tier tier2 --name "Spa Day" --description "Calm spa" --output spa.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, pipeline, err := opts.pipeline(cmd)
			if err != nil {
				return err
			}
			req := domain.ImageRequest{
				GiftcardName: strings.TrimSpace(name),
				Description:  strings.TrimSpace(description),
			}
			if err := domain.Validate(req); err != nil {
				return err
			}
			res, err := pipeline.GenerateImage(ctx, cfg, req)
			if err != nil {
				return err
			}
			if output == "" {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			data, err := base64.StdEncoding.DecodeString(res.ImageBase64)
			if err != nil {
				return fmt.Errorf("failed to decode image payload: %w", err)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Image written to %s (%s, %d bytes)\n", output, res.MediaType, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Gift card name")
	cmd.Flags().StringVar(&description, "description", "", "Scene description")
	cmd.Flags().StringVar(&output, "output", "", "Write the decoded PNG to this file instead of printing JSON")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}
