package types

import (
	"strconv"
	"strings"
)

func tupleKey(members []TypeID) string {
	var b strings.Builder
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(m), 10))
	}
	return b.String()
}

// Tuple interns an ordered sequence of component types, used for
// multi-value returns and destructuring targets.
func (in *Interner) Tuple(members []TypeID) TypeID {
	if len(members) == 0 {
		return in.emptyTupleID
	}
	key := tupleKey(members)
	if id, ok := in.tupleCache[key]; ok {
		return id
	}
	payload := in.pushTupleInfo(append([]TypeID(nil), members...))
	id := in.internRaw(Type{Kind: KindTuple, Payload: payload})
	in.tupleCache[key] = id
	return id
}

// EmptyTuple returns the atom representing zero-arity tuples (the `()`
// type of a function with no return values).
func (in *Interner) EmptyTuple() TypeID { return in.emptyTupleID }

// ErrorType is an alias of EmptyTuple: the type of a reverted expression.
func (in *Interner) ErrorType() TypeID { return in.emptyTupleID }

// TupleMembers returns the ordered component types of a tuple-kind type.
func (in *Interner) TupleMembers(id TypeID) []TypeID {
	t := in.MustLookup(id)
	return in.tupleInfos[t.Payload]
}
