package parser

import "github.com/sysml-go/modelcore/internal/genmodel"

// categoryKinds maps the grammar's Category keyword to the pair of
// element kinds it produces: Definition kind (IsDef set) and Usage
// kind (IsDef unset). A handful of action-usage subkinds (accept,
// perform, ...) are not reachable through a bare category keyword in
// this surface grammar, and the converter does not produce them.
type categoryKinds struct {
	definition genmodel.ElementKind
	usage      genmodel.ElementKind
}

var categoryTable = map[string]categoryKinds{
	"part":          {genmodel.KindPartDefinition, genmodel.KindPartUsage},
	"attribute":     {genmodel.KindAttributeDefinition, genmodel.KindAttributeUsage},
	"port":          {genmodel.KindPortDefinition, genmodel.KindPortUsage},
	"item":          {genmodel.KindItemDefinition, genmodel.KindItemUsage},
	"connection":    {genmodel.KindConnectionDefinition, genmodel.KindConnectionUsage},
	"interface":     {genmodel.KindInterfaceDefinition, genmodel.KindInterfaceUsage},
	"flow":          {genmodel.KindFlowConnectionDefinition, genmodel.KindFlowConnectionUsage},
	"allocation":    {genmodel.KindAllocationDefinition, genmodel.KindAllocationUsage},
	"action":        {genmodel.KindActionDefinition, genmodel.KindActionUsage},
	"state":         {genmodel.KindStateDefinition, genmodel.KindStateUsage},
	"calc":          {genmodel.KindCalculationDefinition, genmodel.KindCalculationUsage},
	"constraint":    {genmodel.KindConstraintDefinition, genmodel.KindConstraintUsage},
	"requirement":   {genmodel.KindRequirementDefinition, genmodel.KindRequirementUsage},
	"concern":       {genmodel.KindConcernDefinition, genmodel.KindConcernUsage},
	"case":          {genmodel.KindCaseDefinition, genmodel.KindCaseUsage},
	"analysis":      {genmodel.KindAnalysisCaseDefinition, genmodel.KindAnalysisCaseUsage},
	"verification":  {genmodel.KindVerificationCaseDefinition, genmodel.KindVerificationCaseUsage},
	"usecase":       {genmodel.KindUseCaseDefinition, genmodel.KindUseCaseUsage},
	"view":          {genmodel.KindViewDefinition, genmodel.KindViewUsage},
	"viewpoint":     {genmodel.KindViewpointDefinition, genmodel.KindViewpointUsage},
	"rendering":     {genmodel.KindRenderingDefinition, genmodel.KindRenderingUsage},
	"metadata":      {genmodel.KindMetadataDefinition, genmodel.KindMetadataUsage},
	"enum":          {genmodel.KindEnumerationDefinition, genmodel.KindEnumerationUsage},
}

// kindForDeclaration picks the element kind a Declaration's Category
// and IsDef flag denote. fallback supplies the kind to use when
// Category is empty (a bare redefinition/member statement nested
// inside a usage's body, which inherits its enclosing usage's kind).
func kindForDeclaration(category string, isDef bool, fallback genmodel.ElementKind) genmodel.ElementKind {
	ck, ok := categoryTable[category]
	if !ok {
		return fallback
	}
	if isDef {
		return ck.definition
	}
	return ck.usage
}
