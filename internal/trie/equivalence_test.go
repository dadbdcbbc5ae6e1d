package trie

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference is an ordered string set backed by a B-tree.
type reference struct {
	tree *btree.BTreeG[string]
}

func newReference() *reference {
	return &reference{tree: btree.NewOrderedG[string](8)}
}

func (r *reference) keys() []string {
	keys := []string{}
	r.tree.Ascend(func(k string) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func randomKey(rng *rand.Rand) string {
	const alphabet = "\x00ab\xffc"
	n := rng.Intn(5)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func TestTrie_MatchesReferenceSet(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		tr := New()
		ref := newReference()

		for i := 0; i < 400; i++ {
			key := randomKey(rng)
			switch op := rng.Intn(10); {
			case op < 6:
				_, existed := tr.Insert(key)
				_, had := ref.tree.ReplaceOrInsert(key)
				require.Equal(t, had, existed, "seed %d step %d: Insert(%q)", seed, i, key)
			case op < 9:
				_, had := ref.tree.Delete(key)
				require.Equal(t, had, tr.Erase(key), "seed %d step %d: Erase(%q)", seed, i, key)
			default:
				tr.Clear()
				ref.tree.Clear(false)
			}

			require.Equal(t, ref.tree.Len(), tr.Size(), "seed %d step %d", seed, i)
			require.Equal(t, tr.Size() == 0, tr.Empty())
			require.Equal(t, ref.tree.Has(key), tr.Contains(key))
		}

		if diff := cmp.Diff(ref.keys(), collectOrEmpty(t, tr)); diff != "" {
			t.Errorf("seed %d: iteration mismatch (-want +got):\n%s", seed, diff)
		}
	}
}

func collectOrEmpty(t *testing.T, tr *Trie) []string {
	keys := collect(t, tr)
	if keys == nil {
		return []string{}
	}
	return keys
}

func TestTrie_EraseThenInsertRestoresMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := New()
	for i := 0; i < 200; i++ {
		tr.Insert(randomKey(rng))
	}
	before := tr.Keys()

	for _, x := range before {
		tr.Erase(x)
		_, existed := tr.Insert(x)
		assert.False(t, existed)
	}
	assert.Equal(t, before, tr.Keys())
}

func TestTrie_IterationIsStrictlyIncreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := New()
	for i := 0; i < 300; i++ {
		tr.Insert(randomKey(rng))
	}

	keys := collect(t, tr)
	require.Len(t, keys, tr.Size())
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}
