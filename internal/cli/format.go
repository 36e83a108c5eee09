package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"bnbstat/internal/query"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a tabwriter over stdout with the project's standard
// settings.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// printSummary prints headline statistics in text format.
func printSummary(s query.Summary) {
	fmt.Printf("Listings:          %d\n", s.TotalListings)
	fmt.Printf("Average price:     $%.2f\n", s.AvgPrice)
	fmt.Printf("Median price:      $%.2f\n", s.MedianPrice)
	fmt.Printf("Unique hosts:      %d\n", s.TotalHosts)
	fmt.Printf("Average reviews:   %.1f\n", s.AvgReviews)
	fmt.Printf("Total reviews:     %d\n", s.TotalReviews)
	fmt.Printf("Commercial:        %d\n", s.CommercialCount)
	fmt.Printf("Avg availability:  %.1f days/year\n", s.AvgAvailability)
}

// printBoroughStats prints per-borough statistics as a table.
func printBoroughStats(stats []query.BoroughStats) error {
	if len(stats) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "BOROUGH\tCOUNT\tAVG PRICE\tMEDIAN\tREVIEWS\tAVG AVAIL")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t$%.2f\t$%.2f\t%d\t%.1f\n",
			s.Borough, s.Count, s.AvgPrice, s.MedianPrice, s.TotalReviews, s.AvgAvailability)
	}
	return w.Flush()
}

// printRoomTypeStats prints per-room-type statistics as a table.
func printRoomTypeStats(stats []query.RoomTypeStats) error {
	if len(stats) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ROOM TYPE\tCOUNT\tAVG PRICE\tMEDIAN\tAVG REVIEWS")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t$%.2f\t$%.2f\t%.1f\n",
			s.RoomType, s.Count, s.AvgPrice, s.MedianPrice, s.AvgReviews)
	}
	return w.Flush()
}

// printHostRanks prints the top-hosts ranking as a table.
func printHostRanks(hosts []query.HostRank) error {
	if len(hosts) == 0 {
		fmt.Println("No hosts found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "RANK\tHOST\tLISTINGS\tAVG PRICE\tREVIEWS")
	for i, h := range hosts {
		name := h.HostName
		if name == "" {
			name = fmt.Sprintf("host %d", h.HostID)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t$%.2f\t%d\n",
			i+1, truncate(name, 30), h.ListingCount, h.AvgPrice, h.TotalReviews)
	}
	return w.Flush()
}

// printValueListings prints the top-value ranking as a table.
func printValueListings(listings []query.ValueListing) error {
	if len(listings) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "RANK\tNAME\tNEIGHBOURHOOD\tPRICE\tREVIEWS\tSCORE")
	for i, l := range listings {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.0f\t%d\t%.2f\n",
			i+1, truncate(l.Name, 36), l.Neighbourhood, l.Price, l.NumberOfReviews, l.ValueScore)
	}
	return w.Flush()
}

// printROISegments prints ROI segments as a table.
func printROISegments(segments []query.ROISegment) error {
	if len(segments) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "BOROUGH\tROOM TYPE\tMED PRICE\tMED AVAIL\tEST REVENUE")
	for _, s := range segments {
		fmt.Fprintf(w, "%s\t%s\t$%.0f\t%.0f\t$%.0f\n",
			s.Borough, s.RoomType, s.MedianPrice, s.MedianAvailability, s.EstimatedRevenue)
	}
	return w.Flush()
}

// printCommercialComparison prints the commercial/regular split.
func printCommercialComparison(c query.CommercialComparison) error {
	w := newTable()
	fmt.Fprintln(w, "SEGMENT\tCOUNT\tMED PRICE\tMED AVAIL\tMED REVIEWS")
	fmt.Fprintf(w, "commercial\t%d\t$%.2f\t%.0f\t%.0f\n",
		c.Commercial.Count, c.Commercial.MedianPrice, c.Commercial.MedianAvailability, c.Commercial.MedianReviews)
	fmt.Fprintf(w, "regular\t%d\t$%.2f\t%.0f\t%.0f\n",
		c.Regular.Count, c.Regular.MedianPrice, c.Regular.MedianAvailability, c.Regular.MedianReviews)
	return w.Flush()
}

// printCategoryCounts prints bucket counts as a table.
func printCategoryCounts(counts []query.CategoryCount) error {
	w := newTable()
	fmt.Fprintln(w, "CATEGORY\tCOUNT")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Category, c.Count)
	}
	return w.Flush()
}

// printMonthCounts prints the review trend as a table.
func printMonthCounts(months []query.MonthCount) error {
	if len(months) == 0 {
		fmt.Println("No review dates in the current view.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "MONTH\tREVIEWS")
	for _, m := range months {
		fmt.Fprintf(w, "%s\t%d\n", m.Month, m.Count)
	}
	return w.Flush()
}

// printHistogram prints a price histogram as rows of bin ranges.
func printHistogram(h query.Histogram) error {
	if len(h.Counts) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "PRICE RANGE\tCOUNT")
	for i, c := range h.Counts {
		fmt.Fprintf(w, "$%.0f-$%.0f\t%d\n", h.Edges[i], h.Edges[i+1], c)
	}
	return w.Flush()
}

// printQuality prints the data quality report.
func printQuality(q query.QualityReport, missing []query.MissingColumn) error {
	fmt.Printf("Quality score:   %.1f%%\n", q.Score)
	fmt.Printf("Records:         %d\n", q.TotalRecords)
	fmt.Printf("Missing cells:   %d\n", q.MissingCells)
	fmt.Printf("Price outliers:  %d\n", q.OutliersFiltered)

	if len(missing) == 0 {
		fmt.Println("No missing values in key columns.")
		return nil
	}

	fmt.Println()
	w := newTable()
	fmt.Fprintln(w, "COLUMN\tMISSING\tPERCENT")
	for _, m := range missing {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", m.Column, m.Count, m.Percentage)
	}
	return w.Flush()
}

// printUncertainty prints confidence intervals.
func printUncertainty(u query.Uncertainty) {
	fmt.Printf("Price:    $%.2f (95%% CI $%.2f – $%.2f, ±$%.2f)\n",
		u.Price.Mean, u.Price.Lower, u.Price.Upper, u.Price.MarginOfError)
	fmt.Printf("Revenue:  $%.2f (95%% CI $%.2f – $%.2f, ±$%.2f)\n",
		u.Revenue.Mean, u.Revenue.Lower, u.Revenue.Upper, u.Revenue.MarginOfError)
}

// printBoroughValues prints mean value scores per borough.
func printBoroughValues(values []query.BoroughValue) error {
	if len(values) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "BOROUGH\tVALUE SCORE")
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%.3f\n", v.Borough, v.ValueScore)
	}
	return w.Flush()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
