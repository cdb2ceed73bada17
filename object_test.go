package autumn

import "testing"

func TestStringHashKeysByContent(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	if hello1.HashKey() != hello2.HashKey() {
		t.Error("strings with the same content should have the same hash key")
	}
	if diff1.HashKey() != diff2.HashKey() {
		t.Error("strings with the same content should have the same hash key")
	}
	if hello1.HashKey() == diff1.HashKey() {
		t.Error("strings with different content should have different hash keys")
	}
}

func TestIntegerAndBooleanHashKeysAreDistinctByType(t *testing.T) {
	one := &Integer{Value: 1}
	yes := &Boolean{Value: true}

	if one.HashKey() == yes.HashKey() {
		t.Error("1 and true must produce distinct hash keys despite equal content encodings")
	}
}

func TestBooleanIdentity(t *testing.T) {
	if nativeBoolToBooleanObject(true) != TRUE_VALUE {
		t.Error("nativeBoolToBooleanObject(true) must return the canonical TRUE_VALUE singleton")
	}
	if nativeBoolToBooleanObject(false) != FALSE_VALUE {
		t.Error("nativeBoolToBooleanObject(false) must return the canonical FALSE_VALUE singleton")
	}
}

func TestHashPreservesInsertionOrderOnRebind(t *testing.T) {
	h := NewHash()
	a := &String{Value: "a"}
	b := &String{Value: "b"}
	h.Set(a, a.HashKey(), &Integer{Value: 1})
	h.Set(b, b.HashKey(), &Integer{Value: 2})
	h.Set(a, a.HashKey(), &Integer{Value: 3})

	if len(h.Order) != 2 {
		t.Fatalf("order length = %d, want 2 (rebind must not append again)", len(h.Order))
	}
	if h.Order[0] != a.HashKey() {
		t.Fatalf("first key should remain %q after rebinding", "a")
	}
	got := h.Pairs[a.HashKey()].Value.(*Integer).Value
	if got != 3 {
		t.Fatalf("rebound value = %d, want 3", got)
	}
}

func TestInspectQuotesStringsButPutsDoesNot(t *testing.T) {
	s := &String{Value: "x"}
	if Inspect(s) != `"x"` {
		t.Fatalf("Inspect(%q) = %s, want quoted", s.Value, Inspect(s))
	}
	if s.Inspect() != "x" {
		t.Fatalf("s.Inspect() = %s, want unquoted", s.Inspect())
	}
}
