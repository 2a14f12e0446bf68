/*
File    : go-lox/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-lox/objects"
)

// TestScope_BindAndLookUp verifies bindings resolve in the defining scope
// and through the parent chain
func TestScope_BindAndLookUp(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Number{Value: 10})

	child := NewScope(global)

	// found in parent through the chain
	val, ok := child.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, 10.0, val.(*objects.Number).Value)

	// missing everywhere
	_, ok = child.LookUp("y")
	assert.False(t, ok)
}

// TestScope_Shadowing verifies an inner binding hides the outer one without
// touching it
func TestScope_Shadowing(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Number{Value: 1})

	child := NewScope(global)
	child.Bind("x", &objects.Number{Value: 2})

	val, _ := child.LookUp("x")
	assert.Equal(t, 2.0, val.(*objects.Number).Value)

	val, _ = global.LookUp("x")
	assert.Equal(t, 1.0, val.(*objects.Number).Value)
}

// TestScope_RebindReplaces verifies redefinition in the same scope silently
// replaces the binding and reports that the name existed
func TestScope_RebindReplaces(t *testing.T) {
	s := NewScope(nil)

	_, had := s.Bind("x", &objects.Number{Value: 1})
	assert.False(t, had)

	_, had = s.Bind("x", &objects.String{Value: "now a string"})
	assert.True(t, had)

	val, _ := s.LookUp("x")
	assert.Equal(t, objects.StringType, val.GetType())
}

// TestScope_AssignWalksParents verifies assignment updates the binding in
// the scope that defines it, not the scope doing the assigning
func TestScope_AssignWalksParents(t *testing.T) {
	global := NewScope(nil)
	global.Bind("counter", &objects.Number{Value: 0})

	inner := NewScope(NewScope(global))

	where, ok := inner.Assign("counter", &objects.Number{Value: 5})
	assert.True(t, ok)
	assert.Same(t, global, where)

	val, _ := global.LookUp("counter")
	assert.Equal(t, 5.0, val.(*objects.Number).Value)

	// the inner scopes gained no binding of their own
	_, has := inner.Variables["counter"]
	assert.False(t, has)
}

// TestScope_AssignMissing verifies assigning an undeclared name fails
// without creating a binding
func TestScope_AssignMissing(t *testing.T) {
	global := NewScope(nil)
	child := NewScope(global)

	where, ok := child.Assign("ghost", &objects.Nil{})
	assert.False(t, ok)
	assert.Nil(t, where)

	_, found := child.LookUp("ghost")
	assert.False(t, found)
}

// TestScope_Dump verifies the debug dump walks the chain
func TestScope_Dump(t *testing.T) {
	global := NewScope(nil)
	global.Bind("a", &objects.Number{Value: 1})
	child := NewScope(global)
	child.Bind("b", &objects.Boolean{Value: true})

	var buf bytes.Buffer
	child.Dump(&buf, "")

	out := buf.String()
	assert.Contains(t, out, "b -> true")
	assert.Contains(t, out, "a -> 1")
	assert.Contains(t, out, "parent")
}
