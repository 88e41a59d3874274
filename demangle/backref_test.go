package demangle

import (
	"errors"
	"strings"
	"testing"
)

func TestNameBackref(t *testing.T) {
	got, err := Demangle("?x@ns@@3PEAV?$klass@HH@1@EA")
	if err != nil {
		t.Fatalf("Demangle failed: %v", err)
	}
	if want := "class ns::klass<int,int>*ns::x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNameCacheBound(t *testing.T) {
	// Twelve segments decode fine even though only the first ten are
	// memorized.
	got, err := Demangle("?a@b@c@d@e@f@g@h@i@j@k@l@@3HA")
	if err != nil {
		t.Fatalf("Demangle failed: %v", err)
	}
	if want := "int l::k::j::i::h::g::f::e::d::c::b::a"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Digit 9 resolves to the tenth memorized segment.
	got, err = Demangle("?a@b@c@d@e@f@g@h@i@j@9@3HA")
	if err != nil {
		t.Fatalf("Demangle failed: %v", err)
	}
	if want := "int j::j::i::h::g::f::e::d::c::b::a"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNameCacheIdempotent(t *testing.T) {
	// The repeated segment occupies a single cache slot, so slot 0 resolves
	// and slot 1 does not.
	got, err := Demangle("?x@x@0@3HA")
	if err != nil {
		t.Fatalf("Demangle failed: %v", err)
	}
	if want := "int x::x::x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, err = Demangle("?x@x@1@3HA")
	if !errors.Is(err, ErrInvalidBackref) {
		t.Errorf("err = %v, want ErrInvalidBackref", err)
	}
}

func TestParamBackref(t *testing.T) {
	got, err := Demangle("?x@@YAXPEAHH0@Z")
	if err != nil {
		t.Fatalf("Demangle failed: %v", err)
	}
	// Digit 0 repeats the first memorized parameter type. The single-byte
	// int between them occupies no slot.
	if want := "void x(int*,int,int*)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParamSingleByteNotCached(t *testing.T) {
	_, err := Demangle("?x@@YAXH0@Z")
	if !errors.Is(err, ErrInvalidBackref) {
		t.Errorf("err = %v, want ErrInvalidBackref", err)
	}
}

func TestParamCacheBound(t *testing.T) {
	var b strings.Builder
	b.WriteString("?x@@YAX")
	for c := byte('a'); c <= 'k'; c++ {
		b.WriteByte('U')
		b.WriteByte(c)
		b.WriteString("@@")
	}
	b.WriteString("9@Z")

	got, err := Demangle(b.String())
	if err != nil {
		t.Fatalf("Demangle failed: %v", err)
	}
	// Eleven struct parameters: the cache holds the first ten, and digit 9
	// names the tenth (struct j), not the eleventh.
	want := "void x(struct a,struct b,struct c,struct d,struct e,struct f," +
		"struct g,struct h,struct i,struct j,struct k,struct j)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParamCacheScopedPerList(t *testing.T) {
	// The template argument list memorizes int* in its own cache; the
	// function list memorizes the whole class type. Digit 0 in the function
	// list must yield the class, not int*.
	got, err := Demangle("?x@@YAXV?$tmpl@PEAH@@0@Z")
	if err != nil {
		t.Fatalf("Demangle failed: %v", err)
	}
	if want := "void x(class tmpl<int*>,class tmpl<int*>)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// The reverse direction: a digit inside a template list cannot see
	// types memorized by the enclosing function list.
	_, err = Demangle("?x@@YAXPEAHV?$tmpl@0@@@Z")
	if !errors.Is(err, ErrInvalidBackref) {
		t.Errorf("err = %v, want ErrInvalidBackref", err)
	}
}

func TestBackrefShared(t *testing.T) {
	// Both occurrences of the memorized function-pointer type print
	// identically.
	got, err := Demangle("?x@@3P6AHP6AHM@Z0@ZEA")
	if err != nil {
		t.Fatalf("Demangle failed: %v", err)
	}
	if want := "int(*x)(int(*)(float),int(*)(float))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
