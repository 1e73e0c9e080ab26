/*
Package contracttest contains helpers shared by contract tests.
*/
package contracttest

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// NewExecutor returns executor over a fresh single-node chain.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Compile compiles contract from the dir using config.yml from the same dir.
func Compile(t testing.TB, e *neotest.Executor, dir string) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, dir, filepath.Join(dir, "config.yml"))
}

// RequireEvent checks that ev is the named notification with the given
// arguments. Supported argument kinds are nil, util.Uint160, bool, string,
// int, int64 and *big.Int.
func RequireEvent(t testing.TB, ev state.NotificationEvent, name string, args ...any) {
	require.Equal(t, name, ev.Name)

	items, ok := ev.Item.Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, items, len(args), "%s notification", name)

	for i := range args {
		RequireItem(t, args[i], items[i])
	}
}

// RequireItem compares stack item with the expected Go value.
func RequireItem(t testing.TB, expected any, item stackitem.Item) {
	switch v := expected.(type) {
	case nil:
		require.Equal(t, stackitem.AnyT, item.Type())
	case util.Uint160:
		b, err := item.TryBytes()
		require.NoError(t, err)
		require.Equal(t, v.BytesBE(), b)
	case bool:
		b, err := item.TryBool()
		require.NoError(t, err)
		require.Equal(t, v, b)
	case string:
		b, err := item.TryBytes()
		require.NoError(t, err)
		require.Equal(t, v, string(b))
	case int:
		RequireItem(t, big.NewInt(int64(v)), item)
	case int64:
		RequireItem(t, big.NewInt(v), item)
	case *big.Int:
		n, err := item.TryInteger()
		require.NoError(t, err)
		require.Zero(t, v.Cmp(n), "expected %s, got %s", v, n)
	default:
		t.Fatalf("unexpected value of type %T", expected)
	}
}

// Call test-invokes read-only method and returns the resulting item.
func Call(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) stackitem.Item {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	return s.Pop().Item()
}

// RequireCall test-invokes method and compares its result with expected.
func RequireCall(t testing.TB, c *neotest.ContractInvoker, expected any, method string, args ...any) {
	RequireItem(t, expected, Call(t, c, method, args...))
}

// Fields returns fields of the struct returned by method.
func Fields(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	fields, ok := Call(t, c, method, args...).Value().([]stackitem.Item)
	require.True(t, ok)
	return fields
}

// Now returns the time of the latest block in seconds.
func Now(t testing.TB, c *neotest.ContractInvoker) uint64 {
	return c.TopBlock(t).Timestamp / 1000
}

// SetTime adds an empty block so that the next block (and test invocations)
// happen exactly at sec seconds.
func SetTime(t testing.TB, c *neotest.ContractInvoker, sec uint64) {
	b := c.NewUnsignedBlock(t)
	b.Timestamp = sec*1000 - 1
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
}
