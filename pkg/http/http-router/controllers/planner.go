package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/app"
	"github.com/osmnav/wayplanner/pkg/geo"
	helper "github.com/osmnav/wayplanner/pkg/http/http-router/router-helper"
)

type plannerAPI struct {
	planService PlanService
	log         *zap.Logger
}

func New(planService PlanService, log *zap.Logger) *plannerAPI {
	return &plannerAPI{
		planService: planService,
		log:         log,
	}
}

func (api *plannerAPI) Routes(group *helper.RouteGroup) {
	group.POST("/route", api.planRoute)
	group.GET("/nearest", api.nearestWay)
	group.GET("/tags", api.selectedTags)
	group.POST("/cursor", api.moveCursor)
	group.POST("/viewport/zoom", api.zoom)
	group.POST("/viewport/pan", api.pan)
	group.POST("/path/start", api.startPath)
	group.DELETE("/path", api.clearPath)
	group.POST("/debug", api.setDebug)
	group.POST("/highlights", api.setHighlights)
}

func (api *plannerAPI) validateStruct(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

type geoPoint struct {
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Long float64 `json:"long" validate:"min=-180,max=180"`
}

func (p geoPoint) coord() geo.GeoCoord {
	return geo.GeoCoord{Long: p.Long, Lat: p.Lat}
}

type viewportSize struct {
	Width  uint32 `json:"width" validate:"required,min=1"`
	Height uint32 `json:"height" validate:"required,min=1"`
}

func (v viewportSize) size() geo.Size {
	return geo.Size{Width: v.Width, Height: v.Height}
}

type planRouteRequest struct {
	Start geoPoint `json:"start"`
	End   geoPoint `json:"end"`
	Debug bool     `json:"debug"`
}

// planRoute snaps the two coordinates to their nearest ways and returns the
// shortest route between them, end-to-start. An empty path is a normal
// response: the points may be unroutable or snap to nothing.
func (api *plannerAPI) planRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request planRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateStruct(w, r, request) {
		return
	}

	result := api.planService.PlanRoute(request.Start.coord(), request.End.coord(), request.Debug)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// nearestWay resolves the way nearest to a query coordinate. The sentinel
// way id -1 means nothing is near the point.
func (api *plannerAPI) nearestWay(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid lat parameter: %w", err))
		return
	}
	long, err := strconv.ParseFloat(r.URL.Query().Get("long"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid long parameter: %w", err))
		return
	}

	position := api.planService.NearestWay(geo.GeoCoord{Long: long, Lat: lat})

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": position}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *plannerAPI) selectedTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tags := api.planService.SelectedTags()

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": tags}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type moveCursorRequest struct {
	// PointerLeft reports that the pointer left the view; X and Y are
	// ignored in that case.
	PointerLeft bool         `json:"pointer_left"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	Viewport    viewportSize `json:"viewport"`
}

func (api *plannerAPI) moveCursor(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request moveCursorRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateStruct(w, r, request) {
		return
	}

	var cursor *geo.PixelCoord
	if !request.PointerLeft {
		cursor = &geo.PixelCoord{X: request.X, Y: request.Y}
	}

	state := api.planService.MoveCursor(cursor, request.Viewport.size())

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": state}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type zoomRequest struct {
	Factor   float64      `json:"factor" validate:"required,gt=0"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Viewport viewportSize `json:"viewport"`
}

func (api *plannerAPI) zoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request zoomRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateStruct(w, r, request) {
		return
	}

	state := api.planService.Zoom(request.Factor,
		geo.PixelCoord{X: request.X, Y: request.Y}, request.Viewport.size())

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": state}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type panRequest struct {
	DX       float64      `json:"dx"`
	DY       float64      `json:"dy"`
	Viewport viewportSize `json:"viewport"`
}

func (api *plannerAPI) pan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request panRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateStruct(w, r, request) {
		return
	}

	state := api.planService.Pan(geo.PixelOffset{X: request.DX, Y: request.DY},
		request.Viewport.size())

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": state}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *plannerAPI) startPath(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	api.planService.StartPath()

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *plannerAPI) clearPath(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	api.planService.ClearPath()

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type debugRequest struct {
	Enable bool `json:"enable"`
}

func (api *plannerAPI) setDebug(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request debugRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	api.planService.SetDebug(request.Enable)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type highlightsRequest struct {
	Highlights []app.Highlight `json:"highlights" validate:"required"`
}

// setHighlights replaces the tag highlight list. A pattern that fails to
// compile is a 400; the previously set list stays active.
func (api *plannerAPI) setHighlights(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request highlightsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateStruct(w, r, request) {
		return
	}

	if err := api.planService.SetHighlights(request.Highlights); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
