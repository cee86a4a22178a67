package feed

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"
)

func collect(ch <-chan string) []string {
	var got []string
	for c := range ch {
		got = append(got, c)
	}
	return got
}

func TestCategoryForCode(t *testing.T) {
	cases := map[int]string{
		1000: "Clear",
		1003: "Clouds",
		1030: "Clouds",
		1063: "Rain",
		1171: "Rain",
		1180: "Rain",
		1201: "Rain",
		1204: "Snow",
		1237: "Snow",
		1273: "Thunderstorm",
		1282: "Thunderstorm",
		1172: "Clouds",
		42:   "Clouds",
	}
	for code, want := range cases {
		if got := CategoryForCode(code); got != want {
			t.Fatalf("CategoryForCode(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestLinesSkipsBlanksAndComments(t *testing.T) {
	input := "snow\n\n# comment\n  Rain  \n1213\nclear\n"
	got := collect(Lines(context.Background(), strings.NewReader(input), nil))
	want := []string{"snow", "Rain", "Snow", "clear"}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestScanStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := make(chan string)
	if err := Scan(ctx, strings.NewReader("snow\n"), out); err == nil {
		t.Fatal("Scan must report cancellation when nobody reads")
	}
}

func TestCycleRoundRobin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := Cycle(ctx, []string{"snow", "rain"}, time.Millisecond)

	var got []string
	for len(got) < 5 {
		got = append(got, <-ch)
	}
	want := []string{"snow", "rain", "snow", "rain", "snow"}
	if !slices.Equal(got, want) {
		t.Fatalf("Cycle = %q, want %q", got, want)
	}
	cancel()
	for range ch {
	}
}

func TestCycleEmptyCloses(t *testing.T) {
	if got := collect(Cycle(context.Background(), nil, time.Second)); len(got) != 0 {
		t.Fatalf("empty cycle produced %q", got)
	}
}

func TestMerge(t *testing.T) {
	a := Lines(context.Background(), strings.NewReader("snow\nrain\n"), nil)
	b := Lines(context.Background(), strings.NewReader("clear\n"), nil)
	got := collect(Merge(context.Background(), a, nil, b))
	slices.Sort(got)
	want := []string{"clear", "rain", "snow"}
	if !slices.Equal(got, want) {
		t.Fatalf("Merge = %q, want %q", got, want)
	}
}
