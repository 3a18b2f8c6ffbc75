package attr

import (
	"fmt"

	"github.com/funvibe/javac-core/internal/diag"
	"github.com/funvibe/javac-core/internal/tree"
	"github.com/funvibe/javac-core/internal/types"
)

// RecoveryType is the distinguished target that short-circuits
// overload-specific checking, per spec §4.7 step 6: OverloadCheck against
// it returns true without probing the argument. Modeled as an ErrorType with a nil
// OriginalType so IsSameType/type-switch callers can detect it via the
// IsRecoveryType helper rather than a pointer-identity global (per the
// "no process globals" design note, each Attributor owns its own value).
func (a *Attributor) RecoveryType() types.Type { return a.recoveryType }

// IsRecoveryType reports whether t is this Attributor's distinguished
// recovery target.
func (a *Attributor) IsRecoveryType(t types.Type) bool { return t == a.recoveryType }

// BasicCompleter runs the ordinary (non-overload-aware) attribution of an
// argument expression, producing its standalone type. Supplied by the
// caller (internal/resolve or a higher-level type-checking driver) so
// this package stays independent of the full expression-attribution
// switch, which belongs with the rest of type-checking, not with the
// caching/classification mechanism described by spec §4.7.
type BasicCompleter func(expr tree.Expression) (types.Type, error)

// Attributor drives spec §4.7's argument classification, speculative
// attribution, and overload probing. One Attributor is constructed per
// compilation (per-Context, no process globals).
type Attributor struct {
	cache       *Cache
	basic       BasicCompleter
	log         *diag.Log
	recoveryType types.Type

	// stuck is a slot for deferred expressions whose completion could not
	// proceed (e.g. an implicit lambda whose descriptor is not yet known
	// because an enclosing generic method call hasn't finished inference).
	// Nothing in this package appends to or drains it.
	stuck []tree.Expression

	// persist is the optional cross-run overlay (see persist.go); nil
	// unless SetPersistentCache attached one.
	persist *PersistentArgumentCache
}

// SetPersistentCache attaches a cross-run overlay; pass nil to disable.
func (a *Attributor) SetPersistentCache(p *PersistentArgumentCache) {
	a.persist = p
}

func NewAttributor(basic BasicCompleter, log *diag.Log) *Attributor {
	return &Attributor{
		cache:        NewCache(),
		basic:        basic,
		log:          log,
		recoveryType: types.NewErrorType(nil),
	}
}

// Speculate runs basic completion of expr inside a fresh copied subtree,
// isolated by a LocalCacheContext so all cache mutations are discarded on
// exit, per spec §4.7 step 2.
func (a *Attributor) Speculate(expr tree.Expression) (tree.Expression, types.Type, error) {
	lc := a.EnterLocalCache()
	defer lc.Leave()

	cp := tree.Copy(expr)
	t, err := a.basic(cp)
	if err != nil {
		return cp, a.recoveryType, err
	}
	cp.SetType(t)
	return cp, t, nil
}

// ClassifyAndSpeculate performs spec §4.7 steps 1-2 for one argument: it
// classifies expr by tree tag and, for every classification that the spec
// caches (everything except KindPlainDeferred), runs Speculate and stores
// the result in the ArgumentType.
func (a *Attributor) ClassifyAndSpeculate(pos UniquePos, expr tree.Expression) *ArgumentType {
	at := a.cache.Classify(pos, expr)
	if at.Kind == KindPlainDeferred {
		at.DeferredType = &types.UnknownType{}
		return at
	}
	if at.Speculative == nil {
		spec, t, err := a.Speculate(expr)
		at.Speculative = spec
		if err != nil {
			at.DeferredType = a.recoveryType
		} else {
			at.DeferredType = t
		}
	}
	return at
}

// OverloadCheck implements spec §4.7 step 4: probing a classified
// argument against a candidate ResultInfo, with the per-kind dispatch the
// spec spells out. The result is memoized per (target, mode) pair so
// repeat probes of the same candidate are free.
func (a *Attributor) OverloadCheck(at *ArgumentType, ri ResultInfo) (bool, error) {
	if a.IsRecoveryType(ri.Target) {
		return true, nil
	}
	if cached, ok := at.lookupResult(ri); ok {
		return cached.ok, cached.err
	}
	if a.persist != nil {
		if verdict, found := a.persist.Lookup(at.Pos, ri); found {
			at.recordResult(ri, verdict, nil)
			return verdict, nil
		}
	}

	ok, err := a.overloadCheckUncached(at, ri)
	at.recordResult(ri, ok, err)
	if a.persist != nil && err == nil {
		_ = a.persist.Record(at.Pos, ri, ok) // best-effort; a write failure never changes the verdict just computed
	}
	return ok, err
}

func (a *Attributor) overloadCheckUncached(at *ArgumentType, ri ResultInfo) (bool, error) {
	switch at.Kind {
	case KindParens:
		paren, ok := at.Speculative.(*tree.Paren)
		if !ok {
			return false, fmt.Errorf("attr: KindParens argument's speculative tree is not a Paren")
		}
		inner := a.cache.Classify(UniquePos{Src: at.Pos.Src, Off: paren.Inner.Pos()}, paren.Inner)
		return a.OverloadCheck(inner, ri)

	case KindConditional:
		return a.overloadCheckConditional(at, ri)

	case KindExplicitLambda:
		return a.overloadCheckExplicitLambda(at, ri)

	case KindResolvedMethod, KindResolvedConstructor:
		if types.IsSubtype(at.DeferredType, ri.Target) {
			return true, nil
		}
		return false, fmt.Errorf("attr: %s is not compatible with target %s", at.DeferredType, ri.Target)

	default:
		// KindMethodRef and KindPlainDeferred fall back to the basic
		// completer's already-computed type, per spec §4.7 (method
		// references use their own Overload-kind classification in
		// MethodRefExpr rather than a cached overloadCheck probe).
		if types.IsSubtype(at.DeferredType, ri.Target) {
			return true, nil
		}
		return false, fmt.Errorf("attr: argument type %s is not compatible with target %s", at.DeferredType, ri.Target)
	}
}

func (a *Attributor) overloadCheckConditional(at *ArgumentType, ri ResultInfo) (bool, error) {
	cond, ok := at.Speculative.(*tree.ConditionalExpr)
	if !ok {
		return false, fmt.Errorf("attr: KindConditional argument's speculative tree is not a ConditionalExpr")
	}
	if cond.Poly == tree.Standalone {
		return types.IsSubtype(at.DeferredType, ri.Target), nil
	}
	if _, isVoid := ri.Target.(*types.VoidType); isVoid {
		return false, fmt.Errorf("attr: conditional target cannot be void")
	}
	thenInfo := ri
	elseInfo := ri
	thenAt := a.cache.Classify(UniquePos{Src: at.Pos.Src, Off: cond.Then.Pos()}, cond.Then)
	elseAt := a.cache.Classify(UniquePos{Src: at.Pos.Src, Off: cond.Else.Pos()}, cond.Else)
	thenOK, err := a.OverloadCheck(thenAt, thenInfo)
	if err != nil || !thenOK {
		return false, err
	}
	elseOK, err := a.OverloadCheck(elseAt, elseInfo)
	if err != nil || !elseOK {
		return false, err
	}
	return true, nil
}

func (a *Attributor) overloadCheckExplicitLambda(at *ArgumentType, ri ResultInfo) (bool, error) {
	lambda, ok := at.Speculative.(*tree.LambdaExpr)
	if !ok {
		return false, fmt.Errorf("attr: KindExplicitLambda argument's speculative tree is not a LambdaExpr")
	}
	descriptor, ok := ri.Target.(*types.MethodType)
	if !ok {
		return false, fmt.Errorf("attr: lambda target %s has no function descriptor", ri.Target)
	}
	if len(descriptor.ParamTypes) != len(lambda.Params) {
		return false, fmt.Errorf("attr: lambda has %d parameters, target descriptor expects %d", len(lambda.Params), len(descriptor.ParamTypes))
	}
	for _, retExpr := range lambdaReturnExpressions(lambda) {
		if _, isVoid := descriptor.ReturnType.(*types.VoidType); isVoid {
			continue // void-return lambdas allowed for arbitrary returned expression types
		}
		retAt := a.cache.Classify(UniquePos{Src: at.Pos.Src, Off: retExpr.Pos()}, retExpr)
		ok, err := a.OverloadCheck(retAt, ResultInfo{Target: descriptor.ReturnType, CheckMode: ri.CheckMode})
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// lambdaReturnExpressions enumerates a lambda body's return expressions,
// per spec §4.7's explicit-lambda specifics: an expression-body lambda
// yields a single synthetic return.
func lambdaReturnExpressions(l *tree.LambdaExpr) []tree.Expression {
	if l.ExprBody != nil {
		return []tree.Expression{l.ExprBody}
	}
	block, ok := l.Body.(*tree.Block)
	if !ok {
		return nil
	}
	var out []tree.Expression
	var collect func(s tree.Statement)
	collect = func(s tree.Statement) {
		switch v := s.(type) {
		case *tree.ReturnStmt:
			if v.Value != nil {
				out = append(out, v.Value)
			}
		case *tree.Block:
			for _, inner := range v.Statements {
				collect(inner)
			}
		case *tree.IfStmt:
			collect(v.Then)
			if v.Else != nil {
				collect(v.Else)
			}
		}
	}
	for _, s := range block.Statements {
		collect(s)
	}
	return out
}
