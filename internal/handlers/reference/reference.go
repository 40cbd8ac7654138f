// internal/handlers/reference/reference_handler.go
package reference

import (
	"net/http"
	"sort"

	"humsafar-service/internal/pkg/response"
	"humsafar-service/internal/refdata"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the constant tables the clients render pickers
// from.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

type enumEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ListVehicleTypes returns the chassis types with display labels
func (h *ReferenceHandler) ListVehicleTypes(c *gin.Context) {
	out := make([]enumEntry, 0, len(refdata.VehicleTypeLabels))
	for v, label := range refdata.VehicleTypeLabels {
		out = append(out, enumEntry{Value: string(v), Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	response.Success(c, http.StatusOK, "vehicle types retrieved", out)
}

// ListVehicleStatuses returns the vehicle statuses with display labels
func (h *ReferenceHandler) ListVehicleStatuses(c *gin.Context) {
	out := make([]enumEntry, 0, len(refdata.VehicleStatusLabels))
	for v, label := range refdata.VehicleStatusLabels {
		out = append(out, enumEntry{Value: string(v), Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	response.Success(c, http.StatusOK, "vehicle statuses retrieved", out)
}

// ListRoles returns the user roles with display labels
func (h *ReferenceHandler) ListRoles(c *gin.Context) {
	out := make([]enumEntry, 0, len(refdata.UserRoleLabels))
	for v, label := range refdata.UserRoleLabels {
		out = append(out, enumEntry{Value: string(v), Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	response.Success(c, http.StatusOK, "roles retrieved", out)
}

// ListColors returns the allowed vehicle colors
func (h *ReferenceHandler) ListColors(c *gin.Context) {
	colors := refdata.ColorNames()
	sort.Strings(colors)
	response.Success(c, http.StatusOK, "colors retrieved", colors)
}

// ListTowns returns the configured towns
func (h *ReferenceHandler) ListTowns(c *gin.Context) {
	towns := refdata.TownNames()
	sort.Strings(towns)
	response.Success(c, http.StatusOK, "towns retrieved", towns)
}
