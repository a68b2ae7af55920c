package types

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
)

func TestStudent_ToResponse(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := Student{ID: 7, Name: "Ann", Class: "5A", IsActive: 0, CreatedAt: &now, UpdatedAt: &now, Age: 10}

	got, err := s.ToResponse()
	if err != nil {
		t.Fatalf("ToResponse: %v", err)
	}
	if got.ID != 7 || got.Name != "Ann" || got.Class != "5A" || got.Age != 10 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.IsActive {
		t.Fatalf("is_active 0 should map to false")
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not copied: %+v", got)
	}

	s.IsActive = 1
	got, _ = s.ToResponse()
	if !got.IsActive {
		t.Fatalf("is_active 1 should map to true")
	}
}

func TestStudent_ToResponse_MissingTimestamp(t *testing.T) {
	now := time.Now()
	cases := []Student{
		{ID: 1},
		{ID: 2, CreatedAt: &now},
		{ID: 3, UpdatedAt: &now},
	}
	for _, s := range cases {
		if _, err := s.ToResponse(); !errors.Is(err, ErrMissingTimestamp) {
			t.Fatalf("student %d: expected ErrMissingTimestamp, got %v", s.ID, err)
		}
	}
}

func TestActiveFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body    string
		want    ActiveFlag
		wantErr bool
	}{
		{`{"is_active": true}`, 1, false},
		{`{"is_active": false}`, 0, false},
		{`{"is_active": 1}`, 1, false},
		{`{"is_active": 0}`, 0, false},
		{`{"is_active": null}`, 0, false},
		{`{}`, 0, false},
		{`{"is_active": 2}`, 0, true},
		{`{"is_active": "yes"}`, 0, true},
	}
	for _, tt := range tests {
		var req EditStudentRequest
		err := json.Unmarshal([]byte(tt.body), &req)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.body)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.body, err)
			continue
		}
		if req.IsActive != tt.want {
			t.Errorf("%s: got %d want %d", tt.body, req.IsActive, tt.want)
		}
	}
}

func TestFilterOptions_Normalize(t *testing.T) {
	tests := []struct {
		in         FilterOptions
		want       FilterOptions
		wantOffset int
	}{
		{FilterOptions{}, FilterOptions{Page: 1, Limit: 10}, 0},
		{FilterOptions{Page: 2, Limit: 2}, FilterOptions{Page: 2, Limit: 2}, 2},
		{FilterOptions{Page: 0, Limit: 5}, FilterOptions{Page: 1, Limit: 5}, 0},
		{FilterOptions{Page: -3, Limit: -1}, FilterOptions{Page: 1, Limit: 10}, 0},
		{FilterOptions{Page: 3, Limit: 500}, FilterOptions{Page: 3, Limit: MaxLimit}, 200},
		{FilterOptions{Page: math.MaxInt, Limit: 100}, FilterOptions{Page: math.MaxInt/100 + 1, Limit: 100}, math.MaxInt / 100 * 100},
		{FilterOptions{Page: math.MaxInt, Limit: 1}, FilterOptions{Page: math.MaxInt, Limit: 1}, math.MaxInt - 1},
	}
	for _, tt := range tests {
		got := tt.in.Normalize()
		if got != tt.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
		if off := got.Offset(); off != tt.wantOffset {
			t.Errorf("Offset(%+v) = %d, want %d", got, off, tt.wantOffset)
		}
	}
}
