package cache

import (
	"slices"
	"testing"
)

func TestMap_SetGet(t *testing.T) {
	m := New[rune, int](0)

	if _, ok := m.Get('a'); ok {
		t.Fatal("expected miss on empty map")
	}

	m.Set('a', 1)
	v, ok := m.Get('a')
	if !ok || v != 1 {
		t.Errorf("Get('a') = %d, %v; want 1, true", v, ok)
	}

	st := m.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Len != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, len 1", st)
	}
}

func TestMap_InsertionOrder(t *testing.T) {
	m := New[rune, int](4)
	for i, r := range "zyxwv" {
		m.Set(r, i)
	}
	// Replacing keeps the original slot.
	m.Set('x', 100)

	var keys []rune
	var values []int
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	if want := []rune("zyxwv"); !slices.Equal(keys, want) {
		t.Errorf("keys = %q, want %q", string(keys), string(want))
	}
	if want := []int{0, 1, 100, 3, 4}; !slices.Equal(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
}

func TestMap_AllEarlyStop(t *testing.T) {
	m := New[int, int](0)
	for i := range 10 {
		m.Set(i, i)
	}
	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("visited %d entries, want 3", n)
	}
}

func TestMap_GetOrCreate(t *testing.T) {
	m := New[uint64, int](0)
	calls := 0
	create := func() int {
		calls++
		return 7
	}

	for range 3 {
		if v := m.GetOrCreate(42, create); v != 7 {
			t.Errorf("GetOrCreate = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	st := m.Stats()
	if st.Hits != 2 || st.Misses != 1 {
		t.Errorf("Stats() = %+v, want 2 hits, 1 miss", st)
	}
}

func TestMap_ContainsDoesNotCount(t *testing.T) {
	m := New[int, int](0)
	m.Set(1, 1)
	if !m.Contains(1) || m.Contains(2) {
		t.Error("Contains returned wrong result")
	}
	if st := m.Stats(); st.Hits != 0 || st.Misses != 0 {
		t.Errorf("Contains changed stats: %+v", st)
	}
}

func TestMap_Clear(t *testing.T) {
	m := New[int, int](0)
	m.Set(1, 1)
	m.Get(1)
	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", m.Len())
	}
	if m.Contains(1) {
		t.Error("entry survived Clear")
	}
	if st := m.Stats(); st != (Stats{}) {
		t.Errorf("Stats() = %+v after Clear, want zero", st)
	}

	// Map stays usable.
	m.Set(2, 2)
	if v, ok := m.Get(2); !ok || v != 2 {
		t.Errorf("Get(2) = %d, %v after Clear", v, ok)
	}
}

func TestStats_HitRate(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  float64
	}{
		{"empty", Stats{}, 0},
		{"all hits", Stats{Hits: 4}, 1},
		{"half", Stats{Hits: 2, Misses: 2}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.HitRate(); got != tt.want {
				t.Errorf("HitRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkMap_GetHit(b *testing.B) {
	m := New[rune, int](256)
	for r := rune(32); r < 128; r++ {
		m.Set(r, int(r))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(rune(32 + i%96))
	}
}

func TestMap_Delete(t *testing.T) {
	m := New[rune, int](0)
	for i, r := range "abcd" {
		m.Set(r, i)
	}

	if !m.Delete('b') {
		t.Fatal("Delete('b') = false, want true")
	}
	if m.Delete('b') {
		t.Error("second Delete('b') = true, want false")
	}

	var keys []rune
	for k := range m.All() {
		keys = append(keys, k)
	}
	if string(keys) != "acd" {
		t.Errorf("keys after Delete = %q, want %q", string(keys), "acd")
	}
	if v, ok := m.Get('d'); !ok || v != 3 {
		t.Errorf("Get('d') = %d, %v after Delete, want 3, true", v, ok)
	}

	m.Set('b', 9)
	keys = keys[:0]
	for k := range m.All() {
		keys = append(keys, k)
	}
	if string(keys) != "acdb" {
		t.Errorf("keys after re-insert = %q, want %q", string(keys), "acdb")
	}
}
