package main

import (
	"fmt"

	"econhub/domain/share"

	"github.com/spf13/cobra"
)

func (c *cli) newShareURLCmd() *cobra.Command {
	var origin string
	var id string
	var href bool

	cmd := &cobra.Command{
		Use:   "share-url",
		Short: "Print the share link of a story",
		Long: `Print the share link of a story. A trailing slash on the origin is dropped
and the id is percent-encoded. With --href the origin may be any absolute URL
and only its scheme and host are kept.

Example: econhub-cli share-url --origin https://site.com/ --id "id with space"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := share.OriginString(origin)
			if href {
				o = share.OriginHref(origin)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), share.BuildURL(o, share.IDString(id)))
			return err
		},
	}
	cmd.Flags().StringVar(&origin, "origin", "", "Site origin, e.g. https://site.com")
	cmd.Flags().StringVar(&id, "id", "", "Story id")
	cmd.Flags().BoolVar(&href, "href", false, "Treat --origin as a full URL and keep only scheme and host")

	return cmd
}
