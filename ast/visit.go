package ast

// Visitor is called by VisitChildrenWith for each child node. An
// implementation that wants to descend further calls
// n.VisitChildrenWith(v) itself.
type Visitor interface {
	Visit(n Node)
}

// VisitorFunc adapts a function to Visitor.
type VisitorFunc func(n Node)

func (f VisitorFunc) Visit(n Node) { f(n) }

type inspector func(Node) bool

func (f inspector) Visit(n Node) {
	if f(n) {
		n.VisitChildrenWith(f)
	}
}

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node. Children of a node are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	inspector(f).Visit(n)
}

func visitExpr(v Visitor, e Expr) {
	if e != nil {
		v.Visit(e)
	}
}

func visitStmt(v Visitor, s Stmt) {
	if s != nil {
		v.Visit(s)
	}
}

func visitPattern(v Visitor, p Pattern) {
	if p != nil {
		v.Visit(p)
	}
}

func visitNode(v Visitor, n Node) {
	if n != nil {
		v.Visit(n)
	}
}

func visitIdent(v Visitor, id *Identifier) {
	if id != nil {
		v.Visit(id)
	}
}

func visitStmts(v Visitor, list []Stmt) {
	for _, s := range list {
		v.Visit(s)
	}
}

func visitExprs(v Visitor, list []Expr) {
	for _, e := range list {
		visitExpr(v, e)
	}
}

func visitDecorators(v Visitor, list []*Decorator) {
	for _, d := range list {
		v.Visit(d)
	}
}

func visitAttributes(v Visitor, list []*ImportAttribute) {
	for _, a := range list {
		v.Visit(a)
	}
}

func (n *Identifier) VisitChildrenWith(Visitor)      {}
func (n *PrivateName) VisitChildrenWith(Visitor)     {}
func (n *NullLiteral) VisitChildrenWith(Visitor)     {}
func (n *BooleanLiteral) VisitChildrenWith(Visitor)  {}
func (n *NumberLiteral) VisitChildrenWith(Visitor)   {}
func (n *BigIntLiteral) VisitChildrenWith(Visitor)   {}
func (n *StringLiteral) VisitChildrenWith(Visitor)   {}
func (n *RegExpLiteral) VisitChildrenWith(Visitor)   {}
func (n *TemplateElement) VisitChildrenWith(Visitor) {}
func (n *ThisExpression) VisitChildrenWith(Visitor)  {}
func (n *SuperExpression) VisitChildrenWith(Visitor) {}
func (n *EmptyStatement) VisitChildrenWith(Visitor)  {}
func (n *Directive) VisitChildrenWith(Visitor)       {}

func (n *DebuggerStatement) VisitChildrenWith(Visitor) {}

func (n *TemplateLiteral) VisitChildrenWith(v Visitor) {
	for i, q := range n.Quasis {
		v.Visit(q)
		if i < len(n.Expressions) {
			v.Visit(n.Expressions[i])
		}
	}
}

func (n *TaggedTemplate) VisitChildrenWith(v Visitor) {
	v.Visit(n.Tag)
	v.Visit(n.Quasi)
}

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	visitExprs(v, n.Elements)
}

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for _, p := range n.Properties {
		v.Visit(p)
	}
}

func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	v.Visit(n.Key)
	v.Visit(n.Value)
}

func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	v.Visit(n.Name)
}

func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Argument)
}

func (n *ParenthesizedExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Expression)
}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Callee)
	visitExprs(v, n.Arguments)
}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Callee)
	visitExprs(v, n.Arguments)
}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Object)
	v.Visit(n.Property)
}

func (n *MetaProperty) VisitChildrenWith(v Visitor) {
	v.Visit(n.Meta)
	v.Visit(n.Property)
}

func (n *ImportExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Source)
	visitExpr(v, n.Options)
}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Operand)
}

func (n *AwaitExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Argument)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Operand)
}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Left)
	v.Visit(n.Right)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Test)
	v.Visit(n.Consequent)
	v.Visit(n.Alternate)
}

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Left)
	v.Visit(n.Right)
}

func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	visitExpr(v, n.Argument)
}

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	visitIdent(v, n.Name)
	v.Visit(n.Params)
	v.Visit(n.Body)
}

func (n *ArrowFunction) VisitChildrenWith(v Visitor) {
	v.Visit(n.Params)
	if n.Body != nil {
		v.Visit(n.Body)
	} else {
		visitExpr(v, n.Expression)
	}
}

func (n *FunctionBody) VisitChildrenWith(v Visitor) {
	for _, d := range n.Directives {
		v.Visit(d)
	}
	visitStmts(v, n.Body)
}

func (n *ParameterList) VisitChildrenWith(v Visitor) {
	for _, p := range n.List {
		v.Visit(p)
	}
	visitPattern(v, n.Rest)
}

func (n *BindingElement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Target)
	visitExpr(v, n.Default)
}

func (n *ArrayPattern) VisitChildrenWith(v Visitor) {
	for _, el := range n.Elements {
		if el != nil {
			v.Visit(el)
		}
	}
	visitPattern(v, n.Rest)
}

func (n *ObjectPattern) VisitChildrenWith(v Visitor) {
	for _, p := range n.Properties {
		v.Visit(p)
	}
	visitPattern(v, n.Rest)
}

func (n *PatternProperty) VisitChildrenWith(v Visitor) {
	if !n.Shorthand {
		v.Visit(n.Key)
	}
	v.Visit(n.Value)
	visitExpr(v, n.Default)
}

func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	visitDecorators(v, n.Decorators)
	visitIdent(v, n.Name)
	visitExpr(v, n.SuperClass)
	for _, el := range n.Body {
		v.Visit(el)
	}
}

func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	visitDecorators(v, n.Decorators)
	v.Visit(n.Key)
	v.Visit(n.Function)
}

func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	visitDecorators(v, n.Decorators)
	v.Visit(n.Key)
	visitExpr(v, n.Initializer)
}

func (n *ClassStaticBlock) VisitChildrenWith(v Visitor) {
	visitStmts(v, n.Body)
}

func (n *Decorator) VisitChildrenWith(v Visitor) {
	v.Visit(n.Expression)
}

func (n *Program) VisitChildrenWith(v Visitor) {
	for _, d := range n.Directives {
		v.Visit(d)
	}
	visitStmts(v, n.Body)
}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Expression)
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	visitStmts(v, n.Body)
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	visitExpr(v, n.Argument)
}

func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Label)
	v.Visit(n.Body)
}

func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	visitIdent(v, n.Label)
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	visitIdent(v, n.Label)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Test)
	v.Visit(n.Consequent)
	visitStmt(v, n.Alternate)
}

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Discriminant)
	for _, c := range n.Cases {
		v.Visit(c)
	}
}

func (n *CaseClause) VisitChildrenWith(v Visitor) {
	visitExpr(v, n.Test)
	visitStmts(v, n.Consequent)
}

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Argument)
}

func (n *TryStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Block)
	if n.Handler != nil {
		v.Visit(n.Handler)
	}
	if n.Finalizer != nil {
		v.Visit(n.Finalizer)
	}
}

func (n *CatchClause) VisitChildrenWith(v Visitor) {
	visitPattern(v, n.Param)
	visitStmts(v, n.Body)
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Test)
	v.Visit(n.Body)
}

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Body)
	v.Visit(n.Test)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	visitNode(v, n.Init)
	visitExpr(v, n.Test)
	visitExpr(v, n.Update)
	v.Visit(n.Body)
}

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Left)
	v.Visit(n.Right)
	v.Visit(n.Body)
}

func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	v.Visit(n.Left)
	v.Visit(n.Right)
	v.Visit(n.Body)
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for _, d := range n.List {
		v.Visit(d)
	}
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	v.Visit(n.Target)
	visitExpr(v, n.Initializer)
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	v.Visit(n.Function)
}

func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	v.Visit(n.Class)
}

func (n *ImportDeclaration) VisitChildrenWith(v Visitor) {
	for _, s := range n.Specifiers {
		v.Visit(s)
	}
	v.Visit(n.Source)
	visitAttributes(v, n.Attributes)
}

func (n *ImportSpecifier) VisitChildrenWith(v Visitor) {
	v.Visit(n.Imported)
	v.Visit(n.Local)
}

func (n *ImportDefaultSpecifier) VisitChildrenWith(v Visitor) {
	v.Visit(n.Local)
}

func (n *ImportNamespaceSpecifier) VisitChildrenWith(v Visitor) {
	v.Visit(n.Local)
}

func (n *ImportAttribute) VisitChildrenWith(v Visitor) {
	v.Visit(n.Value)
}

func (n *ExportNamedDeclaration) VisitChildrenWith(v Visitor) {
	visitStmt(v, n.Declaration)
	for _, s := range n.Specifiers {
		v.Visit(s)
	}
	if n.Source != nil {
		v.Visit(n.Source)
	}
	visitAttributes(v, n.Attributes)
}

func (n *ExportSpecifier) VisitChildrenWith(v Visitor) {
	v.Visit(n.Local)
	v.Visit(n.Exported)
}

func (n *ExportDefaultDeclaration) VisitChildrenWith(v Visitor) {
	v.Visit(n.Declaration)
}

func (n *ExportAllDeclaration) VisitChildrenWith(v Visitor) {
	visitIdent(v, n.Exported)
	v.Visit(n.Source)
	visitAttributes(v, n.Attributes)
}
