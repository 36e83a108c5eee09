package query

import (
	"testing"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

func TestTopHosts(t *testing.T) {
	var rows []listing.Listing
	addHost := func(id int64, name string, listings int, price float64, reviews int) {
		for i := 0; i < listings; i++ {
			rows = append(rows, listing.Listing{
				HostID:          id,
				HostName:        strPtr(name),
				Price:           price,
				NumberOfReviews: reviews,
			})
		}
	}
	addHost(1, "Zoe", 1, 90, 2)
	addHost(2, "Xavier", 5, 100, 4)
	addHost(3, "Yuki", 3, 150, 6)

	got := TopHosts(viewOf(rows...), 2)
	if len(got) != 2 {
		t.Fatalf("got %d hosts, want 2", len(got))
	}
	if got[0].HostID != 2 || got[1].HostID != 3 {
		t.Fatalf("ranking = [%d, %d], want [2, 3]", got[0].HostID, got[1].HostID)
	}
	if got[0].HostName != "Xavier" {
		t.Errorf("host name = %q, want Xavier", got[0].HostName)
	}
	if got[0].ListingCount != 5 {
		t.Errorf("listing count = %d, want 5", got[0].ListingCount)
	}
	if got[0].AvgPrice != 100 {
		t.Errorf("avg price = %v, want 100", got[0].AvgPrice)
	}
	if got[0].TotalReviews != 20 {
		t.Errorf("total reviews = %d, want 20", got[0].TotalReviews)
	}
}

func TestTopHostsTiesKeepFirstAppearance(t *testing.T) {
	v := viewOf(
		listing.Listing{HostID: 7, Price: 50},
		listing.Listing{HostID: 8, Price: 50},
		listing.Listing{HostID: 7, Price: 50},
		listing.Listing{HostID: 8, Price: 50},
	)

	got := TopHosts(v, 10)
	if len(got) != 2 {
		t.Fatalf("got %d hosts, want 2", len(got))
	}
	if got[0].HostID != 7 || got[1].HostID != 8 {
		t.Errorf("tie order = [%d, %d], want [7, 8]", got[0].HostID, got[1].HostID)
	}
}

func TestTopHostsEdges(t *testing.T) {
	if got := TopHosts(dataset.View{}, 5); got != nil {
		t.Errorf("empty view = %v, want nil", got)
	}
	v := viewOf(listing.Listing{HostID: 1, Price: 50})
	if got := TopHosts(v, 0); got != nil {
		t.Errorf("n=0 = %v, want nil", got)
	}
}

func TestHostCategoryDistribution(t *testing.T) {
	v := viewOf(
		listing.Listing{HostID: 1, HostListingsCount: 1},
		listing.Listing{HostID: 2, HostListingsCount: 1},
		listing.Listing{HostID: 3, HostListingsCount: 3},
		listing.Listing{HostID: 4, HostListingsCount: 7},
		listing.Listing{HostID: 5, HostListingsCount: 12},
	)

	got := HostCategoryDistribution(v)
	want := []CategoryCount{
		{Category: "Single (1)", Count: 2},
		{Category: "Small (2-5)", Count: 1},
		{Category: "Medium (6-10)", Count: 1},
		{Category: "Mega (10+)", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHostCategoryDistributionIncludesEmptyBuckets(t *testing.T) {
	v := viewOf(listing.Listing{HostID: 1, HostListingsCount: 1})

	got := HostCategoryDistribution(v)
	if len(got) != 4 {
		t.Fatalf("got %d buckets, want all 4", len(got))
	}
	if got[3].Category != "Mega (10+)" || got[3].Count != 0 {
		t.Errorf("last bucket = %+v, want zero-count mega", got[3])
	}
}

func TestEntireHomeByHostSize(t *testing.T) {
	// Host 1 has three entire-home rows in the dataset, so its size
	// bucket comes from the row count, not the reported listings count.
	v := viewOf(
		listing.Listing{HostID: 1, RoomType: listing.RoomEntireHome, HostListingsCount: 1},
		listing.Listing{HostID: 1, RoomType: listing.RoomEntireHome, HostListingsCount: 1},
		listing.Listing{HostID: 1, RoomType: listing.RoomEntireHome, HostListingsCount: 1},
		listing.Listing{HostID: 2, RoomType: listing.RoomPrivateRoom, HostListingsCount: 1},
	)

	got := EntireHomeByHostSize(v)
	if len(got) != 4 {
		t.Fatalf("got %d buckets, want 4", len(got))
	}
	for _, b := range got {
		want := 0
		if b.Category == "Small (2-5)" {
			want = 3
		}
		if b.Count != want {
			t.Errorf("bucket %q = %d, want %d", b.Category, b.Count, want)
		}
	}
}
