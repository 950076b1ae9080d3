package script

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/ardnew/synbuild/pkg"
	"github.com/ardnew/synbuild/syntax"
	"github.com/ardnew/synbuild/syntax/printer"
)

//nolint:gochecknoglobals
var (
	envOnce  sync.Once
	envFuncs map[string]any
	envCache map[string]any
)

// constructors maps script names to the syntax functions they call. Each is
// adapted by [bind] before it enters the environment.
func constructors() map[string]any {
	return map[string]any{
		// Operators and variant tokens.
		"attr_style_inner":       syntax.AttrStyleInner,
		"bin_op_add":             syntax.BinOpAdd,
		"bin_op_add_assign":      syntax.BinOpAddAssign,
		"bin_op_and":             syntax.BinOpAnd,
		"bin_op_bit_and":         syntax.BinOpBitAnd,
		"bin_op_bit_and_assign":  syntax.BinOpBitAndAssign,
		"bin_op_bit_or":          syntax.BinOpBitOr,
		"bin_op_bit_or_assign":   syntax.BinOpBitOrAssign,
		"bin_op_bit_xor":         syntax.BinOpBitXor,
		"bin_op_bit_xor_assign":  syntax.BinOpBitXorAssign,
		"bin_op_div":             syntax.BinOpDiv,
		"bin_op_div_assign":      syntax.BinOpDivAssign,
		"bin_op_eq":              syntax.BinOpEq,
		"bin_op_ge":              syntax.BinOpGe,
		"bin_op_gt":              syntax.BinOpGt,
		"bin_op_le":              syntax.BinOpLe,
		"bin_op_lt":              syntax.BinOpLt,
		"bin_op_mul":             syntax.BinOpMul,
		"bin_op_mul_assign":      syntax.BinOpMulAssign,
		"bin_op_ne":              syntax.BinOpNe,
		"bin_op_or":              syntax.BinOpOr,
		"bin_op_rem":             syntax.BinOpRem,
		"bin_op_rem_assign":      syntax.BinOpRemAssign,
		"bin_op_shl":             syntax.BinOpShl,
		"bin_op_shl_assign":      syntax.BinOpShlAssign,
		"bin_op_shr":             syntax.BinOpShr,
		"bin_op_shr_assign":      syntax.BinOpShrAssign,
		"bin_op_sub":             syntax.BinOpSub,
		"bin_op_sub_assign":      syntax.BinOpSubAssign,
		"range_limits_closed":    syntax.RangeLimitsClosed,
		"range_limits_half_open": syntax.RangeLimitsHalfOpen,
		"static_mutability_mut":  syntax.StaticMutabilityMut,
		"un_op_deref":            syntax.UnOpDeref,
		"un_op_neg":              syntax.UnOpNeg,
		"un_op_not":              syntax.UnOpNot,
		"visibility_public":      syntax.VisibilityPublic,

		// Literals.
		"lit_bool":     syntax.NewLitBool,
		"lit_byte":     syntax.NewLitByte,
		"lit_byte_str": syntax.NewLitByteStr,
		"lit_char":     syntax.NewLitChar,
		"lit_float":    syntax.NewLitFloat,
		"lit_int":      syntax.NewLitInt,
		"lit_str":      syntax.NewLitStr,

		// Types.
		"abi":               syntax.NewAbi,
		"bare_fn_arg":       syntax.NewBareFnArg,
		"bare_variadic":     syntax.NewBareVariadic,
		"type_array":        syntax.NewTypeArray,
		"type_bare_fn":      syntax.NewTypeBareFn,
		"type_group":        syntax.NewTypeGroup,
		"type_impl_trait":   syntax.NewTypeImplTrait,
		"type_infer":        syntax.NewTypeInfer,
		"type_macro":        syntax.NewTypeMacro,
		"type_never":        syntax.NewTypeNever,
		"type_paren":        syntax.NewTypeParen,
		"type_path":         syntax.NewTypePath[*syntax.Path],
		"type_ptr_const":    syntax.NewTypePtrConst,
		"type_ptr_mut":      syntax.NewTypePtrMut,
		"type_reference":    syntax.NewTypeReference,
		"type_slice":        syntax.NewTypeSlice,
		"type_trait_object": syntax.NewTypeTraitObject,
		"type_tuple":        syntax.NewTypeTuple,

		// Patterns.
		"field_pat":        syntax.NewFieldPat,
		"pat_ident":        syntax.NewPatIdent,
		"pat_or":           syntax.NewPatOr,
		"pat_paren":        syntax.NewPatParen,
		"pat_reference":    syntax.NewPatReference,
		"pat_rest":         syntax.NewPatRest,
		"pat_slice":        syntax.NewPatSlice,
		"pat_struct":       syntax.NewPatStruct[*syntax.Path],
		"pat_tuple":        syntax.NewPatTuple,
		"pat_tuple_struct": syntax.NewPatTupleStruct[*syntax.Path],
		"pat_type":         syntax.NewPatType,
		"pat_wild":         syntax.NewPatWild,

		// Expressions.
		"arm":              syntax.NewArm,
		"expr_array":       syntax.NewExprArray,
		"expr_assign":      syntax.NewExprAssign,
		"expr_async":       syntax.NewExprAsync,
		"expr_await":       syntax.NewExprAwait,
		"expr_binary":      syntax.NewExprBinary,
		"expr_block":       syntax.NewExprBlock,
		"expr_break":       syntax.NewExprBreak,
		"expr_call":        syntax.NewExprCall,
		"expr_cast":        syntax.NewExprCast,
		"expr_closure":     syntax.NewExprClosure,
		"expr_const":       syntax.NewExprConst,
		"expr_continue":    syntax.NewExprContinue,
		"expr_field":       syntax.NewExprField,
		"expr_for_loop":    syntax.NewExprForLoop,
		"expr_group":       syntax.NewExprGroup,
		"expr_if":          syntax.NewExprIf,
		"expr_index":       syntax.NewExprIndex,
		"expr_infer":       syntax.NewExprInfer,
		"expr_let":         syntax.NewExprLet,
		"expr_lit":         syntax.NewExprLit,
		"expr_loop":        syntax.NewExprLoop,
		"expr_macro":       syntax.NewExprMacro,
		"expr_match":       syntax.NewExprMatch,
		"expr_method_call": syntax.NewExprMethodCall,
		"expr_paren":       syntax.NewExprParen,
		"expr_path":        syntax.NewExprPath[*syntax.Path],
		"expr_range":       syntax.NewExprRange,
		"expr_reference":   syntax.NewExprReference,
		"expr_repeat":      syntax.NewExprRepeat,
		"expr_return":      syntax.NewExprReturn,
		"expr_struct":      syntax.NewExprStruct[*syntax.Path],
		"expr_try":         syntax.NewExprTry,
		"expr_try_block":   syntax.NewExprTryBlock,
		"expr_tuple":       syntax.NewExprTuple,
		"expr_unary":       syntax.NewExprUnary,
		"expr_unsafe":      syntax.NewExprUnsafe,
		"expr_while":       syntax.NewExprWhile,
		"expr_yield":       syntax.NewExprYield,
		"field_value":      syntax.NewFieldValue,
		"label":            syntax.NewLabel,

		// Statements.
		"block":      syntax.NewBlock,
		"local":      syntax.NewLocal,
		"local_init": syntax.NewLocalInit,
		"stmt_expr":  syntax.NewStmtExpr,
		"stmt_macro": syntax.NewStmtMacro,

		// Items.
		"file":                syntax.NewFile,
		"foreign_item_fn":     syntax.NewForeignItemFn,
		"foreign_item_macro":  syntax.NewForeignItemMacro,
		"foreign_item_static": syntax.NewForeignItemStatic,
		"foreign_item_type":   syntax.NewForeignItemType,
		"impl_item_const":     syntax.NewImplItemConst,
		"impl_item_fn":        syntax.NewImplItemFn,
		"impl_item_macro":     syntax.NewImplItemMacro,
		"impl_item_type":      syntax.NewImplItemType,
		"item_const":          syntax.NewItemConst,
		"item_enum":           syntax.NewItemEnum,
		"item_extern_crate":   syntax.NewItemExternCrate,
		"item_fn":             syntax.NewItemFn,
		"item_foreign_mod":    syntax.NewItemForeignMod,
		"item_impl":           syntax.NewItemImpl,
		"item_macro":          syntax.NewItemMacro,
		"item_mod":            syntax.NewItemMod,
		"item_static":         syntax.NewItemStatic,
		"item_struct":         syntax.NewItemStruct,
		"item_trait":          syntax.NewItemTrait,
		"item_trait_alias":    syntax.NewItemTraitAlias,
		"item_type":           syntax.NewItemType,
		"item_union":          syntax.NewItemUnion,
		"item_use":            syntax.NewItemUse,
		"receiver":            syntax.NewReceiver,
		"signature":           syntax.NewSignature,
		"trait_item_const":    syntax.NewTraitItemConst,
		"trait_item_fn":       syntax.NewTraitItemFn,
		"trait_item_macro":    syntax.NewTraitItemMacro,
		"trait_item_type":     syntax.NewTraitItemType,
		"use_glob":            syntax.NewUseGlob,
		"use_group":           syntax.NewUseGroup,
		"use_name":            syntax.NewUseName,
		"use_path":            syntax.NewUsePath,
		"use_rename":          syntax.NewUseRename,
		"variadic":            syntax.NewVariadic,

		// Data structures.
		"data_enum":      syntax.NewDataEnum,
		"data_struct":    syntax.NewDataStruct,
		"data_union":     syntax.NewDataUnion,
		"derive_input":   syntax.NewDeriveInput,
		"field":          syntax.NewField,
		"fields_named":   syntax.NewFieldsNamed,
		"fields_unnamed": syntax.NewFieldsUnnamed,
		"variant":        syntax.NewVariant,

		// Paths, generics, attributes and macros.
		"angle_bracketed_generic_arguments": syntax.NewAngleBracketedGenericArguments,
		"assoc_const":                       syntax.NewAssocConst,
		"assoc_type":                        syntax.NewAssocType,
		"attribute":                         syntax.NewAttribute,
		"bound_lifetimes":                   syntax.NewBoundLifetimes,
		"const_param":                       syntax.NewConstParam,
		"constraint":                        syntax.NewConstraint,
		"generics":                          syntax.NewGenerics,
		"index":                             syntax.NewIndex,
		"lifetime":                          syntax.NewLifetime,
		"lifetime_param":                    syntax.NewLifetimeParam,
		"macro":                             syntax.NewMacro[*syntax.Path],
		"meta_list":                         syntax.NewMetaList[*syntax.Path],
		"meta_name_value":                   syntax.NewMetaNameValue[*syntax.Path],
		"parenthesized_generic_arguments":   syntax.NewParenthesizedGenericArguments,
		"path":                              syntax.IntoPath[string],
		"path_segments":                     syntax.NewPath,
		"path_segment":                      syntax.NewPathSegment,
		"predicate_lifetime":                syntax.NewPredicateLifetime,
		"predicate_type":                    syntax.NewPredicateType,
		"qself":                             syntax.NewQSelf,
		"token_stream":                      syntax.NewTokenStream,
		"trait_bound":                       syntax.NewTraitBound[*syntax.Path],
		"type_param":                        syntax.NewTypeParam,
		"vis_restricted":                    syntax.NewVisRestricted[*syntax.Path],
		"where_clause":                      syntax.NewWhereClause,
	}
}

// values are the unit variants and tokens scripts refer to by name.
func values() map[string]any {
	return map[string]any{
		"attr_outer":                syntax.AttrOuter{},
		"field_mutability_none":     syntax.FieldMutabilityNone{},
		"fields_unit":               syntax.FieldsUnit{},
		"path_arguments_none":       syntax.PathArgumentsNone{},
		"return_type_default":       syntax.ReturnTypeDefault{},
		"static_mutability_none":    syntax.StaticMutabilityNone{},
		"trait_bound_modifier_none": syntax.TraitBoundModifierNone{},
		"vis_inherited":             syntax.VisInherited{},

		"brace":   syntax.Brace{},
		"bracket": syntax.Bracket{},
		"paren":   syntax.Paren{},
	}
}

func makeEnv() {
	envFuncs = constructors()
	envFuncs["ident"] = func(name string) syntax.Ident { return syntax.Ident(name) }
	envFuncs["lit"] = litOf

	envCache = make(map[string]any, len(envFuncs)+16)
	for name, fn := range envFuncs {
		envCache[name] = bind(name, fn)
	}

	maps.Copy(envCache, values())

	envCache["emit"] = func(node any) (string, error) { return printer.Sprint(node) }
	envCache["tokens"] = printer.Tokens
	envCache["tree"] = printer.Tree
}

// Env returns the script environment: every syntax constructor under its
// snake_case name (item_enum, variant, type_path, ...), the unit variants,
// and the printer functions emit, tokens and tree.
//
// The environment is built once per process. Each call returns a copy that
// the caller may modify.
func Env() map[string]any {
	envOnce.Do(makeEnv)

	return maps.Clone(envCache)
}

// Names returns the sorted names defined by [Env].
func Names() []string {
	return slices.Sorted(maps.Keys(Env()))
}

// Func returns the Go function behind the environment name, before argument
// adaptation, for signature display.
func Func(name string) (any, bool) {
	envOnce.Do(makeEnv)

	fn, ok := envFuncs[name]

	return fn, ok
}

// litOf is the script form of [syntax.LitOf]: it picks the literal kind from
// the dynamic type of v.
func litOf(v any) (syntax.Lit, error) {
	switch x := v.(type) {
	case string:
		return syntax.LitOf(x), nil
	case []byte:
		return syntax.LitOf(x), nil
	case bool:
		return syntax.LitOf(x), nil
	case int:
		return syntax.LitOf(x), nil
	case int64:
		return syntax.LitOf(x), nil
	case uint:
		return syntax.LitOf(x), nil
	case uint64:
		return syntax.LitOf(x), nil
	case float64:
		if !finite(x) {
			return nil, pkg.ErrBindArguments.With(
				slog.String("func", "lit"), slog.Float64("value", x))
		}

		return syntax.LitOf(x), nil
	case syntax.Lit:
		return x, nil
	}

	return nil, pkg.ErrBindArguments.
		With(slog.String("func", "lit"), slog.String("type", fmt.Sprintf("%T", v)))
}
