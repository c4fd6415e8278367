package format

import "testing"

func TestNameHash(t *testing.T) {
	if got := NameHash(DefaultHashMultiplier, ""); got != 0 {
		t.Fatalf("hash of empty name = %#x, want 0", got)
	}
	if got := NameHash(DefaultHashMultiplier, "a"); got != 'a' {
		t.Fatalf("hash of %q = %#x, want %#x", "a", got, 'a')
	}
	// h("ab") = 'a'*0x65 + 'b'
	want := uint32('a')*DefaultHashMultiplier + uint32('b')
	if got := NameHash(DefaultHashMultiplier, "ab"); got != want {
		t.Fatalf("hash of %q = %#x, want %#x", "ab", got, want)
	}
}

func TestNameHashMultiplierMatters(t *testing.T) {
	a := NameHash(DefaultHashMultiplier, "Model/Enemy.sbfres")
	b := NameHash(0x67, "Model/Enemy.sbfres")
	if a == b {
		t.Fatalf("different multipliers should produce different hashes")
	}
}

func TestNameHashWraps(t *testing.T) {
	// Long paths overflow 32 bits; the hash must wrap, not saturate.
	long := "Map/CDungeon/Dungeon119/Dungeon119_Static.smubin"
	got := NameHash(DefaultHashMultiplier, long)
	var want uint32
	for i := 0; i < len(long); i++ {
		want = want*DefaultHashMultiplier + uint32(long[i])
	}
	if got != want {
		t.Fatalf("hash of long name = %#x, want %#x", got, want)
	}
}
