package graph

import (
	"github.com/google/uuid"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/value"
)

func refValue(id model.ElementId) value.Value { return value.Ref(uuid.UUID(id)) }
func stringValue(s string) value.Value         { return value.String(s) }
func enumValue(s string) value.Value           { return value.Enum(s) }

func isRelationshipElement(e *model.Element) bool {
	return genmodel.IsRelationship(e.Kind)
}
