package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newSampleCmd() *cobra.Command {
	var ff filterFlags
	var size int

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a map-ready sample of listings",
		Long:  "Print listing coordinates for map rendering. Views larger than the sample size are downsampled deterministically, so repeated runs plot the same points.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				sample := query.MapSample(v, size)

				type point struct {
					ID        int64   `json:"id"`
					Latitude  float64 `json:"latitude"`
					Longitude float64 `json:"longitude"`
					Price     float64 `json:"price"`
					RoomType  string  `json:"room_type"`
				}
				points := make([]point, 0, sample.Len())
				for i := 0; i < sample.Len(); i++ {
					l := sample.Row(i)
					points = append(points, point{
						ID:        l.ID,
						Latitude:  l.Latitude,
						Longitude: l.Longitude,
						Price:     l.Price,
						RoomType:  string(l.RoomType),
					})
				}

				if isJSON() {
					return printJSON(points)
				}

				w := newTable()
				fmt.Fprintln(w, "ID\tLAT\tLON\tPRICE\tROOM TYPE")
				for _, p := range points {
					fmt.Fprintf(w, "%d\t%.5f\t%.5f\t$%.0f\t%s\n",
						p.ID, p.Latitude, p.Longitude, p.Price, p.RoomType)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&size, "size", query.DefaultSampleSize, "maximum number of points")
	addFilterFlags(cmd, &ff)
	return cmd
}
