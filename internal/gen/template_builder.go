package gen

import (
	"fmt"
	"strconv"
	"strings"

	"hpxml-mapper/internal/schema"
)

// fileData holds all data needed for both templates.
type fileData struct {
	Tool        string
	PackageName string
	Comments    bool
	Enums       []enumData
	Entities    []entityData
	Relations   []string
}

type enumData struct {
	Name    string
	Doc     string
	VarName string
	Values  []enumValueData
}

type enumValueData struct {
	Const string
	Value string
}

type entityData struct {
	Name        string
	Doc         string
	KindConst   string
	Ctor        string
	AttrsVar    string
	CustomCheck bool
	Fields      []fieldData
	Children    []childData
	// Attrs are rendered attribute table entries.
	Attrs     []string
	Resolvers []resolverData
}

type fieldData struct {
	Name string
	Type string
	Flag string
}

type childData struct {
	Field string
	Type  string
	Init  string
	Part  string
}

type resolverData struct {
	Name   string
	Attr   string
	Result string
	Call   string
}

// buildFileData constructs the template data from a validated schema.
func (g *Generator) buildFileData(f *schema.File) (*fileData, error) {
	data := &fileData{
		Tool:        tool,
		PackageName: f.Package,
		Comments:    g.config.GenerateComments,
	}

	if g.config.PackageName != "" {
		data.PackageName = g.config.PackageName
	}

	for _, e := range f.Enums {
		data.Enums = append(data.Enums, buildEnum(e))
	}

	for i := range f.Entities {
		ed, err := buildEntity(f, &f.Entities[i])
		if err != nil {
			return nil, err
		}

		data.Entities = append(data.Entities, ed)
	}

	for _, r := range f.Relations {
		data.Relations = append(data.Relations, relationExpr(r))
	}

	return data, nil
}

func buildEnum(e schema.Enum) enumData {
	doc := e.Doc
	if doc == "" {
		doc = fmt.Sprintf("%s enumerates the HPXML %s values.", e.Name, e.Name)
	}

	ed := enumData{
		Name:    e.Name,
		Doc:     doc,
		VarName: unexported(e.Name) + "Values",
	}

	for _, v := range e.Values {
		ed.Values = append(ed.Values, enumValueData{Const: e.Name + v.Name, Value: v.Value})
	}

	return ed
}

func buildEntity(f *schema.File, e *schema.Entity) (entityData, error) {
	doc := e.Doc
	if doc == "" {
		doc = fmt.Sprintf("%s maps the HPXML %s element.", e.Name, e.Name)
	}

	ed := entityData{
		Name:        e.Name,
		Doc:         doc,
		KindConst:   kindConst(e.Name),
		Ctor:        ctorName(e.Name),
		AttrsVar:    unexported(e.Name) + "Attrs",
		CustomCheck: e.CustomCheck,
	}

	for _, a := range e.Attributes {
		goType, ok := fieldType(a)
		if !ok {
			return ed, fmt.Errorf("%s.%s: unsupported type %q", e.Name, a.Name, a.Type)
		}

		ed.Fields = append(ed.Fields, fieldData{Name: a.Field, Type: goType, Flag: schema.FlagField(a.Field)})
		ed.Attrs = append(ed.Attrs, attrExpr(e.Name, a))
	}

	for _, c := range e.Children {
		if c.Many {
			ed.Children = append(ed.Children, childData{
				Field: c.Name,
				Type:  fmt.Sprintf("Collection[*%s]", c.Kind),
				Init:  fmt.Sprintf("newCollection(%q, %s)", c.Path, ctorName(c.Kind)),
				Part:  "&e." + c.Name,
			})

			continue
		}

		ed.Children = append(ed.Children, childData{
			Field: c.Name,
			Type:  "*" + c.Kind,
			Init:  ctorName(c.Kind) + "()",
			Part:  fmt.Sprintf("single{%q, e.%s}", c.Path, c.Name),
		})
	}

	for _, r := range f.RelationsFrom(e.Name) {
		a, ok := e.Attribute(r.Attr)
		if !ok {
			return ed, fmt.Errorf("%s: relation on undeclared attribute %q", e.Name, r.Attr)
		}

		ed.Resolvers = append(ed.Resolvers, resolver(a, r))
	}

	return ed, nil
}

// fieldType returns the Go type of the struct field holding a.
func fieldType(a schema.Attribute) (string, bool) {
	switch a.Type {
	case schema.TypeID, schema.TypeIDRef:
		return "string", true
	case schema.TypeIDRefs:
		return "[]string", true
	case schema.TypeString:
		return "*string", true
	case schema.TypeInt:
		return "*int", true
	case schema.TypeFloat:
		return "*float64", true
	case schema.TypeBool:
		return "*bool", true
	case schema.TypeEnum, schema.TypeChoice:
		return "*" + a.Enum, true
	default:
		return "", false
	}
}

var attrCtors = map[schema.AttrType]string{
	schema.TypeID:     "identAttr",
	schema.TypeIDRef:  "refAttr",
	schema.TypeIDRefs: "refsAttr",
	schema.TypeString: "textAttr",
	schema.TypeInt:    "intAttr",
	schema.TypeFloat:  "floatAttr",
	schema.TypeBool:   "boolAttr",
	schema.TypeEnum:   "enumAttr",
	schema.TypeChoice: "choiceAttr",
}

// attrExpr renders the attribute table entry of a, e.g.
//
//	floatAttr("area", "Area", func(e *Wall) (**float64, *bool) { return &e.Area, &e.AreaIsDefaulted }).atLeast(0)
func attrExpr(entity string, a schema.Attribute) string {
	goType, _ := fieldType(a)

	path := a.Path
	if a.Type == schema.TypeChoice {
		path = a.Group
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%s(%q, %q, func(e *%s) (*%s, *bool) { return &e.%s, &e.%s }",
		attrCtors[a.Type], a.Name, path, entity, goType, a.Field, schema.FlagField(a.Field))

	if a.Type == schema.TypeChoice {
		sb.WriteString(",")

		for _, c := range a.Choices {
			fmt.Fprintf(&sb, "\n\t\tchoice[%s]{%s, %q},", a.Enum, a.Enum+c.Value, c.Path)
		}

		sb.WriteString("\n\t")
	}

	sb.WriteString(")")
	sb.WriteString(rangeExpr(a.Min, a.Max))

	return sb.String()
}

func rangeExpr(lo, hi *float64) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf(".between(%s, %s)", formatFloat(*lo), formatFloat(*hi))
	case lo != nil:
		return fmt.Sprintf(".atLeast(%s)", formatFloat(*lo))
	case hi != nil:
		return fmt.Sprintf(".atMost(%s)", formatFloat(*hi))
	default:
		return ""
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func relationExpr(r schema.Relation) string {
	to := make([]string, 0, len(r.To))
	for _, k := range r.To {
		to = append(to, kindConst(k))
	}

	policy := "Nullify"
	if r.OnDelete == schema.Cascade {
		policy = "Cascade"
	}

	expr := fmt.Sprintf("{From: %s, Attr: %q, To: []Kind{%s}, OnDelete: %s",
		kindConst(r.From), r.Attr, strings.Join(to, ", "), policy)

	if r.Required {
		expr += ", Required: true"
	}

	return expr + "}"
}

// resolver builds the typed accessor of a reference attribute. References
// with several target kinds resolve to Entity.
func resolver(a *schema.Attribute, r schema.Relation) resolverData {
	rd := resolverData{
		Name: schema.AccessorName(a.Name, a.Type),
		Attr: a.Name,
	}

	single := len(r.To) == 1
	list := a.Type == schema.TypeIDRefs

	switch {
	case single && list:
		rd.Result = "[]*" + r.To[0]
		rd.Call = fmt.Sprintf("resolveAll[*%s](e, %q)", r.To[0], a.Name)
	case single:
		rd.Result = "*" + r.To[0]
		rd.Call = fmt.Sprintf("resolveOne[*%s](e, %q)", r.To[0], a.Name)
	case list:
		rd.Result = "[]Entity"
		rd.Call = fmt.Sprintf("ResolveAll(e, %q)", a.Name)
	default:
		rd.Result = "Entity"
		rd.Call = fmt.Sprintf("Resolve(e, %q)", a.Name)
	}

	return rd
}

func kindConst(name string) string { return "Kind" + name }

func ctorName(name string) string { return "new" + name }

// unexported lower-cases the leading word of name: HVACDistribution ->
// hvacDistribution, Wall -> wall.
func unexported(name string) string {
	n := 0
	for n < len(name) && name[n] >= 'A' && name[n] <= 'Z' {
		n++
	}

	switch {
	case n == 0:
		return name
	case n == 1 || n == len(name):
		return strings.ToLower(name[:n]) + name[n:]
	default:
		return strings.ToLower(name[:n-1]) + name[n-1:]
	}
}
