package services

import "testing"

func TestDailyMilkTarget(t *testing.T) {
	tests := []struct {
		weightGrams int
		want        int
	}{
		{weightGrams: 4200, want: 714},
		{weightGrams: 3500, want: 595},
		{weightGrams: 5000, want: 850},
		{weightGrams: 4990, want: 848}, // 848.3 rounds down
		{weightGrams: 0, want: 0},
	}

	for _, testCase := range tests {
		if got := DailyMilkTarget(testCase.weightGrams); got != testCase.want {
			t.Fatalf("DailyMilkTarget(%d) = %d, want %d", testCase.weightGrams, got, testCase.want)
		}
	}
}

func TestAverageFeedAmount(t *testing.T) {
	tests := []struct {
		daily  int
		perDay int
		want   int
	}{
		{daily: 714, perDay: 8, want: 89},
		{daily: 714, perDay: 10, want: 71},
		{daily: 595, perDay: 8, want: 74},
		{daily: 714, perDay: 0, want: 0},
		{daily: 714, perDay: -1, want: 0},
	}

	for _, testCase := range tests {
		if got := AverageFeedAmount(testCase.daily, testCase.perDay); got != testCase.want {
			t.Fatalf("AverageFeedAmount(%d, %d) = %d, want %d", testCase.daily, testCase.perDay, got, testCase.want)
		}
	}
}
