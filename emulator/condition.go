package emulator

import (
	"fmt"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/numpad/neumann-vm/cpu"
	"github.com/numpad/neumann-vm/internal"
)

// Names of the comparison flag values, visible to conditions.
var _flag_defines = map[string]int{
	"UNINITIALIZED": int(cpu.FLAG_UNINITIALIZED),
	"EQUAL":         int(cpu.FLAG_EQUAL),
	"NOT_EQUAL":     int(cpu.FLAG_NOT_EQUAL),
	"LESS_EQUAL":    int(cpu.FLAG_LESS_EQUAL),
	"UNDEFINED":     int(cpu.FLAG_UNDEFINED),
}

// memoryValue is a read-only starlark sequence over the memory words.
type memoryValue struct {
	memory *cpu.Memory
}

var _ starlark.Indexable = (*memoryValue)(nil)

func (mv *memoryValue) String() string { return "mem" }
func (mv *memoryValue) Type() string { return "memory" }
func (mv *memoryValue) Freeze() {}
func (mv *memoryValue) Truth() starlark.Bool { return starlark.True }
func (mv *memoryValue) Len() int { return cpu.MEMORY_SIZE }
func (mv *memoryValue) Index(i int) starlark.Value {
	return starlark.MakeInt(int(mv.memory.Cell[i]))
}

func (mv *memoryValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", mv.Type())
}

// Condition is a starlark expression over the machine state, used to stop
// a run. The expression sees the registers 'pc', 'acc', 'flag' and 'ticks',
// the flag names (EQUAL, NOT_EQUAL, ...), and 'mem', the memory words.
// For example: 'pc == 0xa5 or mem[0xa0] > 10'.
//
// The expression is compiled once. Each evaluation only refreshes the
// register values, and 'mem' reads the live memory.
type Condition struct {
	Expr string

	fn  *starlark.Function
	env starlark.StringDict
	mem *memoryValue
}

// NewCondition compiles the expression, and checks it against a reset
// machine.
func NewCondition(expr string) (cond *Condition, err error) {
	cond = &Condition{Expr: expr}

	_, err = cond.Eval(cpu.NewCpu())
	if err != nil {
		cond = nil
	}

	return
}

// compile resolves the expression against the condition environment.
func (cond *Condition) compile() (err error) {
	cond.mem = &memoryValue{memory: cpu.NewMemory()}
	cond.env = starlark.StringDict{"mem": cond.mem}
	for name, value := range internal.IterSeq2Concat(maps.All(_flag_defines), cpu.NewCpu().Registers()) {
		cond.env[name] = starlark.MakeInt(value)
	}

	opts := syntax.FileOptions{}
	cond.fn, err = starlark.ExprFuncOptions(&opts, "condition", cond.Expr, cond.env)
	return
}

// Eval evaluates the condition against the state of cp.
func (cond *Condition) Eval(cp *cpu.Cpu) (ok bool, err error) {
	if cond.fn == nil {
		err = cond.compile()
		if err != nil {
			return
		}
	}

	for name, value := range cp.Registers() {
		cond.env[name] = starlark.MakeInt(value)
	}
	cond.mem.memory = &cp.Memory

	thread := starlark.Thread{Name: "condition"}
	rc, err := starlark.Call(&thread, cond.fn, nil, nil)
	if err != nil {
		return
	}

	st_bool, is_bool := rc.(starlark.Bool)
	if !is_bool {
		err = ErrConditionType
		return
	}

	ok = bool(st_bool)
	return
}
