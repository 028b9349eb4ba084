package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	objctype "github.com/appsworld/go-objctype"
	"github.com/appsworld/go-objctype/types"
)

func TestWriteTree(t *testing.T) {
	tests := []struct {
		enc  string
		want string
	}{
		{
			enc:  "^i",
			want: "Pointer {0,2} \"^i\"\n  SignedInt {1,1} \"i\" size=4\n",
		},
		{
			enc: "{foo=ii}",
			want: "Struct {0,8} \"{foo=ii}\" name=foo\n" +
				"  SignedInt {5,1} \"i\" size=4\n" +
				"  SignedInt {6,1} \"i\" size=4\n",
		},
		{
			enc:  "b3",
			want: "BitField {0,2} \"b3\" width=3\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.enc, func(t *testing.T) {
			var buf bytes.Buffer
			res := objctype.Decode(tt.enc)
			require.NoError(t, writeTree(&buf, res, types.LP64, newPalette(false)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteTreeDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	res := objctype.Decode("i]")
	require.NoError(t, writeTree(&buf, res, types.LP64, newPalette(false)))
	assert.Contains(t, buf.String(), "! unexpected token ']'")
}

func TestViewResult(t *testing.T) {
	res := objctype.Decode("[4c]")
	v := viewResult(res, types.LP64)
	assert.Equal(t, "[4c]", v.Encoding)
	assert.Equal(t, objctype.NoError.String(), v.Status)
	assert.Empty(t, v.Diagnostics)
	require.NotNil(t, v.Root)
	assert.Equal(t, "Array", v.Root.Category)
	assert.Equal(t, []uint{0, 4}, v.Root.Range)
	require.NotNil(t, v.Root.Count)
	assert.EqualValues(t, 4, *v.Root.Count)
	assert.Nil(t, v.Root.Size)
	require.NotNil(t, v.Root.Elem)
	assert.Equal(t, "SignedChar", v.Root.Elem.Category)
	assert.Equal(t, "c", v.Root.Elem.Text)
	require.NotNil(t, v.Root.Elem.Size)
	assert.Equal(t, 1, *v.Root.Elem.Size)
}

func TestViewResultModel(t *testing.T) {
	v := viewResult(objctype.Decode("l"), types.ILP32)
	require.NotNil(t, v.Root.Size)
	assert.Equal(t, 4, *v.Root.Size)
}

func TestDecodeArgs(t *testing.T) {
	cfg := &DecodeConfig{MainConfig: &MainConfig{}, Y: true}
	var buf bytes.Buffer
	failed, err := decodeArgs(cfg, &buf, []string{"i", "iXi"})
	require.NoError(t, err)
	assert.True(t, failed)
	assert.Contains(t, buf.String(), "encoding: i\n")
	assert.Contains(t, buf.String(), "---\n")
	assert.Contains(t, buf.String(), "category: SignedInt")
}

func TestDecodeArgsBadModel(t *testing.T) {
	cfg := &DecodeConfig{MainConfig: &MainConfig{Model: "ilp64"}}
	_, err := decodeArgs(cfg, &bytes.Buffer{}, []string{"i"})
	assert.Error(t, err)
}

func TestWriteDecls(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDecls(&buf, []string{"^i", "[4[4f]]"}))
	assert.Equal(t, "int *\nfloat x[4][4]\n", buf.String())
}

func TestWriteSignature(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSignature(&buf, "v24@0:8@16"))
	out := buf.String()
	assert.Contains(t, out, "frame 24")
	assert.Contains(t, out, "void")
	assert.Contains(t, out, "self")
	assert.Contains(t, out, "_cmd")
	assert.Contains(t, out, "SEL")
	assert.Contains(t, out, "@16")
}

func TestPropertyDecl(t *testing.T) {
	tests := []struct {
		name  string
		attrs string
		want  string
	}{
		{"", `T@"NSString",C,N,V_name`, "@property (nonatomic, copy) NSString *name;"},
		{"title", `T@"NSString",C,N,V_name`, "@property (nonatomic, copy) NSString *title;"},
		{"", "Tq,N", "@property (nonatomic) long long property;"},
	}
	for _, tt := range tests {
		got, err := propertyDecl(tt.name, tt.attrs)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	_, err := propertyDecl("", "N")
	assert.Error(t, err)
}

const testIface = `
protocols:
  - name: WidgetDelegate
    instance_methods:
      - name: "widgetDidLoad:"
        types: v24@0:8@16
categories:
  - name: Extras
    class: NSString
    instance_methods:
      - name: reversed
        types: "@16@0:8"
`

func TestWriteIface(t *testing.T) {
	var buf bytes.Buffer
	cfg := &IfaceConfig{MainConfig: &MainConfig{}}
	require.NoError(t, writeIface(cfg, &buf, []byte(testIface)))
	want := "@protocol WidgetDelegate\n\n" +
		"@required\n\n" +
		"/* required instance methods */\n" +
		"- (void)widgetDidLoad:(id)arg1;\n\n" +
		"@optional\n\n" +
		"@end\n" +
		"\n" +
		"@interface NSString (Extras)\n\n" +
		"/* instance methods */\n" +
		"- (id)reversed;\n\n" +
		"@end\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	cfg.Brief = true
	require.NoError(t, writeIface(cfg, &buf, []byte(testIface)))
	assert.Contains(t, buf.String(), "-[WidgetDelegate widgetDidLoad:];")
}

func TestDiffEncodings(t *testing.T) {
	var buf bytes.Buffer
	differs, err := diffEncodings(&buf, "{a=ii}", "{a=ii}", types.LP64, newPalette(false))
	require.NoError(t, err)
	assert.False(t, differs)
	assert.Empty(t, buf.String())

	differs, err = diffEncodings(&buf, "^i", "^q", types.LP64, newPalette(false))
	require.NoError(t, err)
	assert.True(t, differs)
	out := buf.String()
	assert.Contains(t, out, "--- ^i\n+++ ^q\n")
	assert.Contains(t, out, " Pointer\n")
	assert.Contains(t, out, "-  SignedInt size=4\n")
	assert.Contains(t, out, "+  SignedLongLong size=8\n")
}

func TestLoggerBuiltOnce(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		cfg := &MainConfig{Verbose: verbose}
		l := cfg.logger()
		require.NotNil(t, l)
		assert.Same(t, l, cfg.logger())
		cfg.syncLogger()
	}
	// syncing before any logger exists is a no-op
	(&MainConfig{}).syncLogger()
}
