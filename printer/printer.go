// Package printer renders an ast.Object or ast.Block back to Yul-like
// source text, one render function per node kind, the way ast.go's
// wat() family renders wg's own AST to WebAssembly text.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"yul2ewasm/ast"
)

// Object renders obj, including every nested subobject, and returns the
// result as a string.
func Object(obj *ast.Object) string {
	var buf bytes.Buffer
	fprintObject(&buf, obj, 0)
	return buf.String()
}

// Block renders b on its own, without an enclosing object header.
func Block(b *ast.Block) string {
	var buf bytes.Buffer
	fprintBlock(&buf, b, 0)
	return buf.String()
}

func indent(w io.Writer, depth int) {
	fmt.Fprint(w, strings.Repeat("    ", depth))
}

func fprintObject(w io.Writer, obj *ast.Object, depth int) {
	indent(w, depth)
	fmt.Fprintf(w, "object %q {\n", obj.Name)
	indent(w, depth+1)
	fmt.Fprintf(w, "code {\n")
	fprintBlockStatements(w, obj.Code, depth+2)
	indent(w, depth+1)
	fmt.Fprintf(w, "}\n")
	for _, sub := range obj.SubObjects {
		switch s := sub.(type) {
		case *ast.Object:
			fprintObject(w, s, depth+1)
		case *ast.Data:
			indent(w, depth+1)
			fmt.Fprintf(w, "data %q %q\n", s.Name, string(s.Content))
		}
	}
	indent(w, depth)
	fmt.Fprintf(w, "}\n")
}

func fprintBlock(w io.Writer, b *ast.Block, depth int) {
	indent(w, depth)
	fmt.Fprintf(w, "{\n")
	fprintBlockStatements(w, b, depth+1)
	indent(w, depth)
	fmt.Fprintf(w, "}\n")
}

func fprintBlockStatements(w io.Writer, b *ast.Block, depth int) {
	if b == nil {
		return
	}
	for _, s := range b.Statements {
		fprintStatement(w, s, depth)
	}
}

func fprintStatement(w io.Writer, s ast.Statement, depth int) {
	switch st := s.(type) {
	case *ast.VariableDeclaration:
		indent(w, depth)
		fmt.Fprint(w, "let ")
		fmt.Fprint(w, typedNameList(st.Variables))
		if st.Value != nil {
			fmt.Fprint(w, " := ")
			fprintExpr(w, st.Value)
		}
		fmt.Fprintln(w)
	case *ast.Assignment:
		indent(w, depth)
		fmt.Fprint(w, identifierList(st.Variables))
		fmt.Fprint(w, " := ")
		fprintExpr(w, st.Value)
		fmt.Fprintln(w)
	case *ast.FunctionCall:
		indent(w, depth)
		fprintExpr(w, st)
		fmt.Fprintln(w)
	case *ast.Block:
		fprintBlock(w, st, depth)
	case *ast.If:
		indent(w, depth)
		fmt.Fprint(w, "if ")
		fprintExpr(w, st.Condition)
		fmt.Fprintln(w, " {")
		fprintBlockStatements(w, st.Body, depth+1)
		indent(w, depth)
		fmt.Fprintln(w, "}")
	case *ast.Switch:
		indent(w, depth)
		fmt.Fprint(w, "switch ")
		fprintExpr(w, st.Expr)
		fmt.Fprintln(w)
		for _, c := range st.Cases {
			indent(w, depth)
			fmt.Fprint(w, "case ")
			fprintExpr(w, c.Value)
			fmt.Fprintln(w, " {")
			fprintBlockStatements(w, c.Body, depth+1)
			indent(w, depth)
			fmt.Fprintln(w, "}")
		}
		if st.Default != nil {
			indent(w, depth)
			fmt.Fprintln(w, "default {")
			fprintBlockStatements(w, st.Default, depth+1)
			indent(w, depth)
			fmt.Fprintln(w, "}")
		}
	case *ast.ForLoop:
		indent(w, depth)
		fmt.Fprint(w, "for ")
		fprintBlock(w, st.Init, depth)
		fprintExpr(w, st.Condition)
		fmt.Fprint(w, " ")
		fprintBlock(w, st.Post, depth)
		fprintBlock(w, st.Body, depth)
	case *ast.Break:
		indent(w, depth)
		fmt.Fprintln(w, "break")
	case *ast.Continue:
		indent(w, depth)
		fmt.Fprintln(w, "continue")
	case *ast.Leave:
		indent(w, depth)
		fmt.Fprintln(w, "leave")
	case *ast.FunctionDefinition:
		indent(w, depth)
		fmt.Fprintf(w, "function %s(%s)", st.Name, typedNameList(st.Parameters))
		if len(st.Returns) > 0 {
			fmt.Fprintf(w, " -> %s", typedNameList(st.Returns))
		}
		fmt.Fprintln(w, " {")
		fprintBlockStatements(w, st.Body, depth+1)
		indent(w, depth)
		fmt.Fprintln(w, "}")
	default:
		indent(w, depth)
		fmt.Fprintf(w, "/* unrenderable statement %T */\n", s)
	}
}

func fprintExpr(w io.Writer, e ast.Expression) {
	switch ex := e.(type) {
	case *ast.Literal:
		fmt.Fprint(w, ex.Value)
	case *ast.Identifier:
		fmt.Fprint(w, ex.Name)
	case *ast.FunctionCall:
		fmt.Fprintf(w, "%s(", ex.Name)
		for i, a := range ex.Arguments {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fprintExpr(w, a)
		}
		fmt.Fprint(w, ")")
	default:
		fmt.Fprintf(w, "/* unrenderable expr %T */", e)
	}
}

func typedNameList(names []*ast.TypedName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if n.Type != "" {
			parts[i] = fmt.Sprintf("%s: %s", n.Name, n.Type)
		} else {
			parts[i] = n.Name
		}
	}
	return strings.Join(parts, ", ")
}

func identifierList(ids []*ast.Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.Name
	}
	return strings.Join(parts, ", ")
}
