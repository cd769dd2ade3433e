package services

import (
	"testing"

	"builder/constants"
	"builder/models"
)

func TestHistoryKey(t *testing.T) {
	if got := HistoryKey(3, constants.EntityTypePage, 17); got != "3:page:17" {
		t.Errorf("HistoryKey = %q, want %q", got, "3:page:17")
	}
}

func TestSelectTrimVictims(t *testing.T) {
	// 60 bản ghi version giảm dần, version 55 và 10 là checkpoint
	var entries []models.EditorHistory
	for v := 60; v >= 1; v-- {
		entries = append(entries, models.EditorHistory{
			ID:           uint(v),
			Version:      v,
			IsCheckpoint: v == 55 || v == 10,
		})
	}

	victims := SelectTrimVictims(entries, constants.HistoryMaxEntries)

	// 58 non-checkpoint, giữ 50 bản mới nhất => xóa 8 bản cũ nhất
	if len(victims) != 8 {
		t.Fatalf("số victim = %d, want 8", len(victims))
	}
	// Giữ 50 non-checkpoint mới nhất (60..56, 54..11, 9), xóa 8 bản cũ nhất
	want := map[uint]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true}
	for _, id := range victims {
		if !want[id] {
			t.Errorf("victim bất ngờ: %d", id)
		}
	}
}

func TestSelectTrimVictimsUnderLimit(t *testing.T) {
	var entries []models.EditorHistory
	for v := 10; v >= 1; v-- {
		entries = append(entries, models.EditorHistory{ID: uint(v), Version: v})
	}
	if victims := SelectTrimVictims(entries, constants.HistoryMaxEntries); len(victims) != 0 {
		t.Errorf("dưới giới hạn thì không trim, got %v", victims)
	}
}

func TestSelectTrimVictimsAllCheckpoints(t *testing.T) {
	var entries []models.EditorHistory
	for v := 100; v >= 1; v-- {
		entries = append(entries, models.EditorHistory{ID: uint(v), Version: v, IsCheckpoint: true})
	}
	if victims := SelectTrimVictims(entries, 50); len(victims) != 0 {
		t.Errorf("toàn checkpoint thì không trim, got %v", victims)
	}
}

func TestHistoryPositionPersistsAcrossCalls(t *testing.T) {
	s := &HistoryService{}
	key := HistoryKey(1, constants.EntityTypePage, 1)
	max := 5

	// Chưa có con trỏ thì đứng ở version mới nhất
	current := s.currentPosition(key, max)
	if current != 5 {
		t.Fatalf("con trỏ mặc định = %d, want 5", current)
	}

	// Undo lần một: 5 -> 4
	target := ClampUndo(current)
	if target != 4 {
		t.Fatalf("undo lần một về version %d, want 4", target)
	}
	s.positions.Store(key, target)

	// Undo lần hai trên cùng service phải đi tiếp từ 4 xuống 3,
	// không quay lại 4 như khi con trỏ bị mất
	current = s.currentPosition(key, max)
	if current != 4 {
		t.Fatalf("con trỏ sau undo lần một = %d, want 4", current)
	}
	target = ClampUndo(current)
	if target != 3 {
		t.Errorf("undo lần hai về version %d, want 3", target)
	}
	s.positions.Store(key, target)

	// Redo sau hai lần undo quay lại 4
	if got := ClampRedo(s.currentPosition(key, max), max); got != 4 {
		t.Errorf("redo sau hai lần undo về version %d, want 4", got)
	}
}

func TestClampUndo(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{50, 49},
	}
	for _, tt := range tests {
		if got := ClampUndo(tt.current); got != tt.want {
			t.Errorf("ClampUndo(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestClampRedo(t *testing.T) {
	tests := []struct {
		current int
		max     int
		want    int
	}{
		{5, 5, 0},
		{5, 4, 0},
		{4, 5, 5},
		{1, 3, 2},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := ClampRedo(tt.current, tt.max); got != tt.want {
			t.Errorf("ClampRedo(%d, %d) = %d, want %d", tt.current, tt.max, got, tt.want)
		}
	}
}
