package objctype

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/appsworld/go-objctype/internal/lexer"
	"github.com/appsworld/go-objctype/types"
)

func TestDecodeBasicTypes(t *testing.T) {
	tests := []struct {
		enc  string
		want types.Category
	}{
		{"c", types.CategorySignedChar},
		{"i", types.CategorySignedInt},
		{"s", types.CategorySignedShort},
		{"l", types.CategorySignedLong},
		{"q", types.CategorySignedLongLong},
		{"C", types.CategoryUnsignedChar},
		{"I", types.CategoryUnsignedInt},
		{"S", types.CategoryUnsignedShort},
		{"L", types.CategoryUnsignedLong},
		{"Q", types.CategoryUnsignedLongLong},
		{"f", types.CategoryFloat},
		{"d", types.CategoryDouble},
		{"B", types.CategoryBool},
		{"v", types.CategoryVoid},
		{"?", types.CategoryUnknown},
		{"*", types.CategoryCharacterString},
		{"#", types.CategoryClass},
		{":", types.CategorySelector},
	}
	for _, tt := range tests {
		t.Run(tt.enc, func(t *testing.T) {
			res := Decode(tt.enc)
			if res.Status() != NoError {
				t.Fatalf("Status() = %v", res.Status())
			}
			root := res.Root()
			if root.Category() != tt.want {
				t.Errorf("Category() = %v, want %v", root.Category(), tt.want)
			}
			if root.Range() != types.MakeRange(0, 1) {
				t.Errorf("Range() = %v, want {0,1}", root.Range())
			}
			if root.HasName() || root.Referenced() != nil || root.NumMembers() != 0 {
				t.Errorf("leaf %v carries payload", root)
			}
		})
	}
}

func TestDecodePointer(t *testing.T) {
	root := MustDecode("^i")
	if root.Category() != types.CategoryPointer || root.Range() != types.MakeRange(0, 2) {
		t.Fatalf("root = %v", root)
	}
	elem := root.Referenced()
	if elem.Category() != types.CategorySignedInt || elem.Range() != types.MakeRange(1, 1) {
		t.Errorf("referenced = %v", elem)
	}
}

func TestDecodeArray(t *testing.T) {
	root := MustDecode("[10i]")
	if root.Category() != types.CategoryArray || root.Range() != types.MakeRange(0, 5) || root.Count() != 10 {
		t.Fatalf("root = %v", root)
	}
	if elem := root.Referenced(); elem.Category() != types.CategorySignedInt || elem.Range() != types.MakeRange(3, 1) {
		t.Errorf("referenced = %v", elem)
	}
}

func TestDecodeStruct(t *testing.T) {
	res := Decode("{foo=ii}")
	root := res.Root()
	if root.Category() != types.CategoryStruct || root.Range() != types.MakeRange(0, 8) {
		t.Fatalf("root = %v", root)
	}
	if name, ok := res.Name(root); !ok || name != "foo" {
		t.Errorf("Name() = %q, %v", name, ok)
	}
	members := root.Members()
	if len(members) != 2 {
		t.Fatalf("got %d members", len(members))
	}
	for _, m := range members {
		if m.Category() != types.CategorySignedInt {
			t.Errorf("member = %v", m)
		}
	}
}

func TestDecodeObject(t *testing.T) {
	enc := `@"NSString"`
	res := Decode(enc)
	root := res.Root()
	if root.Category() != types.CategoryObject || root.Range() != types.MakeRange(0, uint(len(enc))) {
		t.Fatalf("root = %v", root)
	}
	if got := res.Text(root.NameRange()); got != "NSString" {
		t.Errorf("name = %q", got)
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	for _, res := range []*Result{Decode(""), DecodeBytes(nil), DecodeBytes([]byte{}), Decode("\x00i")} {
		if res.Status() != InvalidInput {
			t.Errorf("Status() = %v, want InvalidInput", res.Status())
		}
		if res.Root() != nil {
			t.Errorf("Root() = %v, want nil", res.Root())
		}
		if !errors.Is(res.Err(), ErrInvalidInput) {
			t.Errorf("Err() = %v", res.Err())
		}
		if _, ok := res.Diagnostic(); !ok {
			t.Error("Diagnostic() should describe invalid input")
		}
	}
	var nilResult *Result
	if nilResult.Status() != InvalidInput || nilResult.Root() != nil {
		t.Error("nil result should report InvalidInput")
	}
}

func TestDecodeTopLevel(t *testing.T) {
	root := MustDecode("ii")
	if root.Category() != types.CategoryTopLevel || root.NumMembers() != 2 {
		t.Fatalf("root = %v", root)
	}
	if root.HasName() {
		t.Error("top-level wrapper should have no name")
	}
	for _, m := range root.Members() {
		if m.Category() != types.CategorySignedInt {
			t.Errorf("member = %v", m)
		}
	}
}

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		name   string
		enc    string
		opts   []Option
		status StatusCode
		diag   bool
	}{
		{"clean", "{CGRect={CGPoint=dd}{CGSize=dd}}", nil, NoError, false},
		{"dropped token", "iXi", nil, EncounteredInvalidToken, true},
		{"unterminated is advisory", "{foo=i", nil, NoError, true},
		{"unterminated in strict mode", "{foo=i", []Option{WithStrict()}, EncounteredInvalidToken, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Decode(tt.enc, tt.opts...)
			if res.Status() != tt.status {
				t.Errorf("Status() = %v, want %v", res.Status(), tt.status)
			}
			if _, ok := res.Diagnostic(); ok != tt.diag {
				t.Errorf("Diagnostic() present = %v, want %v", ok, tt.diag)
			}
			if res.Root() == nil {
				t.Error("best-effort decode should still produce a tree")
			}
		})
	}
}

func TestDecodeErr(t *testing.T) {
	res := Decode("i]")
	err := res.Err()
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Err() = %v, want ErrInvalidToken", err)
	}
	var derr *DecodeError
	if !errors.As(err, &derr) || len(derr.Diagnostics) != 1 {
		t.Fatalf("Err() = %#v", err)
	}
	var diag *Diagnostic
	if !errors.As(err, &diag) || diag.Kind != UnexpectedToken {
		t.Errorf("errors.As(*Diagnostic) = %v", diag)
	}
	want := `encountered invalid token in "i]": unexpected token ']' at byte 0x1`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

var corpus = []string{
	"i", "^i", "[10i]", "{foo=ii}", `@"NSString"`, "ii", "^?", "b13",
	"{CGRect={CGPoint=dd}{CGSize=dd}}",
	"^{OutterStruct=(InnerUnion=q{InnerStruct=ii})b1b2b10b1q}",
	"[2^v]", "{test=@*i}", "(?=i)", `{_NSRange=QQ}@"NSArray"#:^*`,
	"[4[4f]]", "{?=b1b31}", "^^{__CFString=}",
}

var categoryKinds = map[types.Category]lexer.Kind{
	types.CategoryVoid:            lexer.Void,
	types.CategoryUnknown:         lexer.Unknown,
	types.CategoryCharacterString: lexer.CharString,
	types.CategoryObject:          lexer.Object,
	types.CategoryClass:           lexer.Class,
	types.CategorySelector:        lexer.Selector,
	types.CategoryArray:           lexer.ArrayOpen,
	types.CategoryStruct:          lexer.StructOpen,
	types.CategoryUnion:           lexer.UnionOpen,
	types.CategoryBitField:        lexer.BitField,
	types.CategoryPointer:         lexer.Pointer,
}

func kindFor(c types.Category) lexer.Kind {
	if k, ok := categoryKinds[c]; ok {
		return k
	}
	return lexer.Basic
}

func TestRangeFidelity(t *testing.T) {
	for _, enc := range corpus {
		res := Decode(enc)
		if err := res.Err(); err != nil {
			t.Fatalf("Decode(%q): %v", enc, err)
		}
		res.Root().Walk(func(n *types.Node, _ int) bool {
			r := n.Range()
			if r.End() > uint(len(enc)) {
				t.Errorf("%q: %v exceeds source", enc, n)
			}
			if n.HasName() && !r.Contains(n.NameRange()) {
				t.Errorf("%q: name %v outside %v", enc, n.NameRange(), r)
			}
			if n.Category() == types.CategoryTopLevel {
				return true
			}
			tok := lexer.New(res.Text(r)).Next()
			if want := kindFor(n.Category()); tok.Kind != want {
				t.Errorf("%q: re-lexing %v gave %v, want %v", enc, n, tok.Kind, want)
			}
			return true
		})
	}
}

func TestDecodeIdempotent(t *testing.T) {
	for _, enc := range corpus {
		a, b := Decode(enc).Root(), Decode(enc).Root()
		if diff := cmp.Diff(a, b, cmp.AllowUnexported(types.Node{})); diff != "" {
			t.Errorf("Decode(%q) not idempotent (-a +b):\n%s", enc, diff)
		}
		var nodesA []*types.Node
		a.Walk(func(n *types.Node, _ int) bool { nodesA = append(nodesA, n); return true })
		i := 0
		b.Walk(func(n *types.Node, _ int) bool {
			if n == nodesA[i] {
				t.Errorf("Decode(%q) shares node %v between results", enc, n)
			}
			i++
			return true
		})
	}
}

func TestRelease(t *testing.T) {
	res := Decode("{foo=ii}")
	res.Release()
	if res.Root() != nil || !res.Released() {
		t.Error("Release() should drop the tree")
	}
	res.Release()
}
