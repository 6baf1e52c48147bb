package ast

// Block is `{ stmt... }`; it also serves as the whole-program node the
// parser produces for top-level source, and as a function body.
type Block struct {
	stmtBase
	Statements []Statement
}

func (*Block) stmtNode() {}

func NewBlock(line int, stmts []Statement) *Block {
	return &Block{stmtBase: stmtBase{line: line}, Statements: stmts}
}

// Declarator is one `name` or `name = expr` entry in a var/let/const
// declaration list.
type Declarator struct {
	Name string
	Init Expression // nil when the declarator has no initializer
}

// VarDeclaration is `var|let|const d1, d2, ...;`.
type VarDeclaration struct {
	stmtBase
	Qualifier Qualifier
	Decls     []Declarator
}

func (*VarDeclaration) stmtNode() {}

func NewVarDeclaration(line int, q Qualifier, decls []Declarator) *VarDeclaration {
	return &VarDeclaration{stmtBase: stmtBase{line: line}, Qualifier: q, Decls: decls}
}

// If is `if (cond) then else else?`.
type If struct {
	stmtBase
	Cond Expression
	Then Statement
	Else Statement // nil when there is no else clause
}

func (*If) stmtNode() {}

func NewIf(line int, cond Expression, then, els Statement) *If {
	return &If{stmtBase: newStmtBase(line), Cond: cond, Then: then, Else: els}
}

// While is `while (cond) body`.
type While struct {
	stmtBase
	Cond  Expression
	Body  Statement
	Label string // set when this loop is the target of a LABEL prefix; "" otherwise
}

func (*While) stmtNode() {}

func NewWhile(line int, cond Expression, body Statement, label string) *While {
	return &While{stmtBase: newStmtBase(line), Cond: cond, Body: body, Label: label}
}

// DoWhile is `do body while (cond);`.
type DoWhile struct {
	stmtBase
	Body  Statement
	Cond  Expression
	Label string
}

func (*DoWhile) stmtNode() {}

func NewDoWhile(line int, body Statement, cond Expression, label string) *DoWhile {
	return &DoWhile{stmtBase: newStmtBase(line), Body: body, Cond: cond, Label: label}
}

// For is the classical three-clause `for (init; cond; incr) body`. Cond is
// never nil: the parser defaults an omitted condition to a Literal(true).
// Incr is never nil either; an omitted increment becomes a no-op
// ExpressionStatement.
type For struct {
	stmtBase
	Init  Statement // nil when the init clause is empty
	Cond  Expression
	Incr  Statement
	Body  Statement
	Label string
}

func (*For) stmtNode() {}

func NewFor(line int, init Statement, cond Expression, incr Statement, body Statement, label string) *For {
	return &For{stmtBase: newStmtBase(line), Init: init, Cond: cond, Incr: incr, Body: body, Label: label}
}

// ForOf is `for (qualifier names of iterable) body`, where names holds
// either one binding (element, or key for an object) or two (key, value
// or index, element).
type ForOf struct {
	stmtBase
	Qualifier Qualifier
	Names     []string
	Iterable  Expression
	Body      Statement
	Label     string
}

func (*ForOf) stmtNode() {}

func NewForOf(line int, qual Qualifier, names []string, iterable Expression, body Statement, label string) *ForOf {
	return &ForOf{stmtBase: newStmtBase(line), Qualifier: qual, Names: names, Iterable: iterable, Body: body, Label: label}
}

// Break is `break;` or a labeled `break label;`.
type Break struct {
	stmtBase
	Label string // "" when unlabeled
}

func (*Break) stmtNode() {}

func NewBreak(line int, label string) *Break {
	return &Break{stmtBase: newStmtBase(line), Label: label}
}

// Continue is `continue;` or a labeled `continue label;`.
type Continue struct {
	stmtBase
	Label string
}

func (*Continue) stmtNode() {}

func NewContinue(line int, label string) *Continue {
	return &Continue{stmtBase: newStmtBase(line), Label: label}
}

// Return is `return;` or `return expr;`.
type Return struct {
	stmtBase
	Value Expression // nil for a bare `return;`
}

func (*Return) stmtNode() {}

func NewReturn(line int, val Expression) *Return {
	return &Return{stmtBase: newStmtBase(line), Value: val}
}

// FunctionDeclaration is `function name(args) { body }`, which declares a
// FUNCTION binding in the current frame.
type FunctionDeclaration struct {
	stmtBase
	Name     string
	ArgNames []string
	Body     *Block
}

func (*FunctionDeclaration) stmtNode() {}

func NewFunctionDeclaration(line int, name string, argNames []string, body *Block) *FunctionDeclaration {
	return &FunctionDeclaration{stmtBase: newStmtBase(line), Name: name, ArgNames: argNames, Body: body}
}

// Throw is `throw expr;`.
type Throw struct {
	stmtBase
	Value Expression
}

func (*Throw) stmtNode() {}

func NewThrow(line int, val Expression) *Throw {
	return &Throw{stmtBase: newStmtBase(line), Value: val}
}

// TryCatch is `try { ... } catch (name) { ... }`.
type TryCatch struct {
	stmtBase
	TryBlock   *Block
	ExceptName string
	CatchBlock *Block
}

func (*TryCatch) stmtNode() {}

func NewTryCatch(line int, tryBlock *Block, exceptName string, catchBlock *Block) *TryCatch {
	return &TryCatch{stmtBase: newStmtBase(line), TryBlock: tryBlock, ExceptName: exceptName, CatchBlock: catchBlock}
}

// Delete is `delete expr;`, legal only when expr is a MemberAccess or
// ArrayIndex that resolves to OBJECT access at evaluation time.
type Delete struct {
	stmtBase
	Target Expression
}

func (*Delete) stmtNode() {}

func NewDelete(line int, target Expression) *Delete {
	return &Delete{stmtBase: newStmtBase(line), Target: target}
}

// ExpressionStatement is a bare expression followed by `;` (or EOF); its
// value becomes the enclosing Block's result when it is the last
// statement executed.
type ExpressionStatement struct {
	stmtBase
	Expr Expression // nil for an empty `;` statement
}

func (*ExpressionStatement) stmtNode() {}

func NewExpressionStatement(line int, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{stmtBase: stmtBase{line: line}, Expr: expr}
}

// helper constructors used throughout the parser, kept here so every
// statement's line-tagging goes through one place.
func newStmtBase(line int) stmtBase { return stmtBase{line: line} }
