package codec

type rule int

const (
	ruleReal rule = iota
	ruleInt
	ruleNilInt
	ruleBool
	ruleString
	ruleStrip
	ruleReals
	ruleLabels
	ruleStrings
	ruleRaw
)

var declared = map[string]rule{
	"types.float":          ruleReal,
	"types.angle":          ruleReal,
	"types.radians":        ruleReal,
	"types.radians0pi4":    ruleReal,
	"LUIPSTypeNumber":      ruleReal,
	"LUIPSTypeAngle0Pi2":   ruleReal,
	"LUIPSTypeFloat":       ruleReal,
	"LUIPSTypeFloat01Open": ruleReal,

	"types.int":    ruleInt,
	"LUIPSTypeInt": ruleNilInt,

	"types.bool": ruleBool,

	"types.string":      ruleString,
	"types.enum":        ruleString,
	"types.text":        ruleString,
	"types.typeboxmode": ruleString,
	"types.set":         ruleString,

	"types.texture":       ruleStrip,
	"types.projectors":    ruleStrip,
	"types.metal":         ruleStrip,
	"types.materials":     ruleStrip,
	"types.animationmode": ruleStrip,
	"LUIPSTypeString":     ruleStrip,

	// a light category is a single name.
	"types.lightcategories": ruleStrip,

	"types.color":     ruleReals,
	"types.vector":    ruleReals,
	"types.vector2":   ruleReals,
	"LUIPSTypeColor":  ruleReals,
	"LUIPSTypeVector": ruleReals,
	"LUIPSTypePoint":  ruleReals,

	"types.hset":     ruleLabels,
	"types.hvisible": ruleLabels,
	"types.hmatte":   ruleLabels,

	"types.multistrings": ruleStrings,

	// the literal of a combo is its list of choices followed by the
	// selection.
	"types.combo": ruleRaw,
}

// Known reports whether decl is a declared value type.
func Known(decl string) bool {
	_, ok := declared[decl]
	return ok
}

// PlugClasses are the create types which create a plug rather than a node.
var PlugClasses = map[string]bool{
	"BakePlug":                      true,
	"DynAttrPlug":                   true,
	"ExpressionInput":               true,
	"ExpressionOutput":              true,
	"HostPlug":                      true,
	"MeshPlug":                      true,
	"Plug":                          true,
	"UserPlug":                      true,
	"HSetPlug":                      true,
	"HVisiblePlug":                  true,
	"HMattePlug":                    true,
	"SceneGraphNodePropsPlug":       true,
	"SceneGraphNodeRenderPropsPlug": true,
	"AttributePlug":                 true,
	"AttributeShaderPlug":           true,
}
