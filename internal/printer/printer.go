// Package printer serializes the emitter's synthesized AST back into JS
// source text. It follows the teacher's own internal/printer idiom
// (print-to-js.go, printer.go): a small buffer-building struct with
// print/printf/println helpers and one big switch over node kind, walked
// recursively — adapted here to internal/ast.Node instead of astro.Node,
// and with no sourcemap chunk builder (spec.md's Non-goals exclude
// "generating source maps beyond what the printer does", and the
// teacher's own sourcemap package wasn't part of the retrieved example).
package printer

import (
	"fmt"
	"strconv"

	"github.com/domexpr/compiler-go/internal/ast"
)

type printer struct {
	output []byte
}

func (p *printer) print(s string) {
	p.output = append(p.output, s...)
}

func (p *printer) printf(format string, args ...any) {
	p.output = append(p.output, fmt.Sprintf(format, args...)...)
}

func (p *printer) println() {
	p.output = append(p.output, '\n')
}

// Print renders a Program node produced by internal/emitter.Transform.
func Print(program *ast.Node) string {
	p := &printer{}
	for i, stmt := range program.Children {
		if i > 0 {
			p.println()
		}
		p.printStatement(stmt)
	}
	p.println()
	return string(p.output)
}

func (p *printer) printStatement(n *ast.Node) {
	if n.LeadingComment != "" {
		p.print("// ")
		p.print(n.LeadingComment)
		p.println()
	}
	switch n.Kind {
	case ast.KindImportDeclaration:
		p.printImport(n)
	case ast.KindVariableDeclaration:
		p.printVarDecl(n)
		p.print(";")
	case ast.KindExpressionStatement:
		p.printExpr(n.Right)
		p.print(";")
	case ast.KindReturnStatement:
		p.print("return ")
		if n.Right != nil {
			p.printExpr(n.Right)
		}
		p.print(";")
	case ast.KindBlockStatement:
		p.print("{")
		for _, s := range n.Children {
			p.println()
			p.printStatement(s)
		}
		p.println()
		p.print("}")
	default:
		p.printExpr(n)
		p.print(";")
	}
}

func (p *printer) printImport(n *ast.Node) {
	p.print("import { ")
	for i, spec := range n.Children {
		if i > 0 {
			p.print(", ")
		}
		p.printf("%s as %s", spec.Data, spec.Raw)
	}
	p.printf(" } from %s;", quoteString(n.Data))
}

func (p *printer) printVarDecl(n *ast.Node) {
	p.print(n.DeclKind)
	p.print(" ")
	for i, decl := range n.Children {
		if i > 0 {
			p.print(",\n  ")
		}
		p.print(decl.Data)
		p.print(" = ")
		p.printExpr(decl.Right)
	}
}

func (p *printer) printExpr(n *ast.Node) {
	if n == nil {
		p.print("undefined")
		return
	}
	switch n.Kind {
	case ast.KindIdentifier:
		p.print(n.Data)

	case ast.KindStringLiteral:
		p.print(quoteString(n.Data))

	case ast.KindNumericLiteral:
		p.print(n.Raw)

	case ast.KindBooleanLiteral, ast.KindNullLiteral:
		p.print(n.Raw)

	case ast.KindRawExpression:
		p.print(n.Raw)

	case ast.KindCallExpression:
		if n.PureAnnotated {
			p.print("/*#__PURE__*/ ")
		}
		if n.Callee != nil && n.Callee.Kind == ast.KindArrowFunctionExpression {
			p.print("(")
			p.printExpr(n.Callee)
			p.print(")")
		} else {
			p.printExpr(n.Callee)
		}
		p.print("(")
		for i, arg := range n.Children {
			if i > 0 {
				p.print(", ")
			}
			p.printExpr(arg)
		}
		p.print(")")

	case ast.KindArrowFunctionExpression:
		p.print("(")
		for i, param := range n.Children {
			if i > 0 {
				p.print(", ")
			}
			p.print(param.Data)
		}
		p.print(") => ")
		if n.Right != nil && n.Right.Kind == ast.KindBlockStatement {
			p.printStatement(n.Right)
		} else {
			p.printExpr(n.Right)
		}

	case ast.KindMemberExpression:
		p.printExpr(n.Object)
		if n.Computed {
			p.print("[")
			p.printExpr(n.Property)
			p.print("]")
		} else {
			p.print(".")
			p.print(n.Property.Data)
		}

	case ast.KindAssignmentExpression:
		p.printExpr(n.Left)
		p.print(" = ")
		p.printExpr(n.Right)

	case ast.KindConditionalExpression:
		p.printExpr(n.Test)
		p.print(" ? ")
		p.printExpr(n.Left)
		p.print(" : ")
		p.printExpr(n.Right)

	case ast.KindArrayExpression:
		p.print("[")
		for i, el := range n.Children {
			if i > 0 {
				p.print(", ")
			}
			p.printExpr(el)
		}
		p.print("]")

	case ast.KindObjectExpression:
		p.printObject(n)

	case ast.KindSpreadElement:
		p.print("...")
		p.printExpr(n.Right)

	case ast.KindTemplateLiteral:
		p.print("`")
		for _, part := range n.Children {
			if part.Kind == ast.KindJSXText {
				p.print(escapeTemplateLiteralText(part.Data))
			} else {
				p.print("${")
				p.printExpr(part)
				p.print("}")
			}
		}
		p.print("`")

	default:
		p.printf("/* unsupported node kind %d */", n.Kind)
	}
}

func (p *printer) printObject(n *ast.Node) {
	if len(n.Children) == 0 {
		p.print("{}")
		return
	}
	p.print("{ ")
	for i, prop := range n.Children {
		if i > 0 {
			p.print(", ")
		}
		switch prop.Kind {
		case ast.KindGetterProperty:
			p.printf("get %s() { return ", propKey(prop.Data))
			p.printExpr(prop.Right)
			p.print("; }")
		case ast.KindSpreadElement:
			p.print("...")
			p.printExpr(prop.Right)
		default:
			p.printf("%s: ", propKey(prop.Data))
			p.printExpr(prop.Right)
		}
	}
	p.print(" }")
}

func propKey(key string) string {
	if isValidIdentifier(key) {
		return key
	}
	return quoteString(key)
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

func quoteString(s string) string {
	return strconv.Quote(s)
}
