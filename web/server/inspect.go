package server

import (
	"math"
	"net/http"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit      bool       `json:"hit"`
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Distance float64    `json:"distance"`
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Index    int        `json:"index"` // Position of the sphere in the scene, -1 on a miss
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// inspectPixel casts a ray through the center of image pixel (pixelX, pixelY),
// with row 0 at the top, and reports the nearest sphere it hits
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResponse {
	camera := renderer.NewCamera(width, height)

	// Image rows run top-down, the camera's v axis bottom-up
	u := float64(pixelX) / float64(max(width-1, 1))
	v := float64(height-1-pixelY) / float64(max(height-1, 1))
	ray := camera.GetRay(u, v)

	hit, isHit := sceneObj.World.Hit(ray, 0, math.Inf(1))
	if !isHit {
		return InspectResponse{Hit: false, Index: -1}
	}

	response := InspectResponse{
		Hit:      true,
		Point:    toArray(ray.At(hit.T)),
		Normal:   toArray(hit.Normal),
		Distance: hit.T,
		Index:    -1,
	}

	// The list does not report which member was hit, so find the one with the same T
	for i, shape := range sceneObj.World.Shapes() {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			continue
		}
		if shapeHit, ok := sphere.Hit(ray, 0, hit.T); ok && shapeHit.T == hit.T {
			response.Center = toArray(sphere.Center())
			response.Radius = sphere.Radius()
			response.Index = i
			break
		}
	}

	return response
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	query := r.URL.Query()
	pixelX, err := parseIntParam(query, "x", req.Width/2, 0, req.Width-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	pixelY, err := parseIntParam(query, "y", req.Height/2, 0, req.Height-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, req.Width, req.Height, pixelX, pixelY))
}
