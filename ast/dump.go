package ast

import (
	"fmt"
	"strings"
)

// Dump renders a compiled sequence as an indented tree, for debugging and
// for tests that want a readable assertion target instead of comparing
// nested struct literals.
func Dump(nodes []Node) string {
	var b strings.Builder
	dumpSequence(&b, nodes, "")
	return b.String()
}

func dumpSequence(b *strings.Builder, nodes []Node, prefix string) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		dumpNode(b, n, prefix, last)
	}
}

func dumpNode(b *strings.Builder, n Node, prefix string, last bool) {
	connector := "├─ "
	childPrefix := prefix + "│  "
	if last {
		connector = "└─ "
		childPrefix = prefix + "   "
	}

	switch v := n.(type) {
	case CharLiteral:
		fmt.Fprintf(b, "%s%sLiteral(%q)\n", prefix, connector, v.Value)
	case DigitClass:
		fmt.Fprintf(b, "%s%sDigitClass\n", prefix, connector)
	case AlphanumericClass:
		fmt.Fprintf(b, "%s%sAlphanumericClass\n", prefix, connector)
	case Wildcard:
		fmt.Fprintf(b, "%s%sWildcard\n", prefix, connector)
	case PositiveCharGroup:
		fmt.Fprintf(b, "%s%sCharGroup(%s)\n", prefix, connector, string(v.Chars))
	case NegativeCharGroup:
		fmt.Fprintf(b, "%s%sCharGroup(^%s)\n", prefix, connector, string(v.Chars))
	case StartOfString:
		fmt.Fprintf(b, "%s%sStartOfString\n", prefix, connector)
		dumpNode(b, v.Inner, childPrefix, true)
	case EndOfString:
		fmt.Fprintf(b, "%s%sEndOfString\n", prefix, connector)
		dumpNode(b, v.Inner, childPrefix, true)
	case OneOrMoreQuantifier:
		fmt.Fprintf(b, "%s%sOneOrMore\n", prefix, connector)
		dumpNode(b, v.Inner, childPrefix, true)
	case OptionalQuantifier:
		fmt.Fprintf(b, "%s%sOptional\n", prefix, connector)
		dumpNode(b, v.Inner, childPrefix, true)
	case Group:
		fmt.Fprintf(b, "%s%sGroup(slot=%d)\n", prefix, connector, v.Slot)
		dumpSequence(b, v.Sequence, childPrefix)
	case Alternation:
		fmt.Fprintf(b, "%s%sAlternation\n", prefix, connector)
		for i, variant := range v.Variants {
			variantLast := i == len(v.Variants)-1
			vconn := "├─ "
			vchild := childPrefix + "│  "
			if variantLast {
				vconn = "└─ "
				vchild = childPrefix + "   "
			}
			fmt.Fprintf(b, "%s%sVariant\n", childPrefix, vconn)
			dumpSequence(b, variant, vchild)
		}
	case Backreference:
		fmt.Fprintf(b, "%s%sBackreference(\\%d)\n", prefix, connector, v.N)
	default:
		fmt.Fprintf(b, "%s%s<unknown node>\n", prefix, connector)
	}
}
