package module

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	glua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/drake/segbar/style"
	"github.com/drake/segbar/text"
)

// chunk is a compiled script together with the mtime it was compiled from.
type chunk struct {
	proto   *glua.FunctionProto
	modTime time.Time
}

// chunkCache holds compiled scripts shared by every Lua module in the process.
// FunctionProtos are immutable once compiled and safe to share across states.
var chunkCache, _ = lru.New[string, chunk](64)

// Lua renders the value returned by a Lua script.
//
// The script is a chunk that returns either a string or a table:
//
//	return { text = "♪ playing", fg = "212", bg = "", bold = true }
//
// Every render runs in a fresh Lua state, so scripts keep no state between renders.
type Lua struct {
	Path string
}

// NewLua creates a module for the script at path. A leading ~ is expanded.
func NewLua(path string) *Lua {
	return &Lua{Path: expandTilde(path)}
}

// Render implements Module.
func (m *Lua) Render(left, right text.Colored) (Result, error) {
	proto, err := compile(m.Path)
	if err != nil {
		return Result{}, err
	}

	L := glua.NewState()
	defer L.Close()

	// Allow scripts to require helpers that live next to them
	pkg := L.GetGlobal("package").(*glua.LTable)
	oldPath := L.GetField(pkg, "path").String()
	L.SetField(pkg, "path", glua.LString(filepath.Dir(m.Path)+"/?.lua;"+oldPath))

	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, 1, nil); err != nil {
		return Result{}, fmt.Errorf("lua %s: %w", filepath.Base(m.Path), err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	content, err := toColored(L, ret)
	if err != nil {
		return Result{}, fmt.Errorf("lua %s: %w", filepath.Base(m.Path), err)
	}
	return Wrap(left, right, content), nil
}

// toColored converts a script's return value to bar text.
func toColored(L *glua.LState, v glua.LValue) (text.Colored, error) {
	switch v := v.(type) {
	case glua.LString:
		return text.Plain(string(v)), nil
	case glua.LNumber:
		return text.Plain(v.String()), nil
	case *glua.LTable:
		s := style.Named(
			luaStringOrEmpty(L.GetField(v, "fg")),
			luaStringOrEmpty(L.GetField(v, "bg")),
			glua.LVAsBool(L.GetField(v, "bold")),
		)
		return text.New(luaStringOrEmpty(L.GetField(v, "text")), s), nil
	case *glua.LNilType:
		return text.Colored{}, nil
	default:
		return text.Colored{}, fmt.Errorf("unsupported return type %s", v.Type())
	}
}

// compile returns the compiled chunk for path, reusing the cached copy while
// the file's mtime is unchanged.
func compile(path string) (*glua.FunctionProto, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if c, ok := chunkCache.Get(path); ok && c.modTime.Equal(info.ModTime()) {
		return c.proto, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stmts, err := parse.Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("lua parse %s: %w", filepath.Base(path), err)
	}
	proto, err := glua.Compile(stmts, path)
	if err != nil {
		return nil, fmt.Errorf("lua compile %s: %w", filepath.Base(path), err)
	}

	chunkCache.Add(path, chunk{proto: proto, modTime: info.ModTime()})
	return proto, nil
}

// luaStringOrEmpty returns the string value of a Lua value, or empty string if nil.
func luaStringOrEmpty(v glua.LValue) string {
	if v == glua.LNil {
		return ""
	}
	return v.String()
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
