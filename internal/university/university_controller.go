package university

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rpatel-116/uniclash/pkg/responses"
)

// UniversityController handles college CRUD requests.
type UniversityController struct {
	repo UniversityRepository
}

// NewUniversityController creates a new university controller.
func NewUniversityController(repo UniversityRepository) *UniversityController {
	return &UniversityController{repo: repo}
}

// GetAll godoc
// @Summary List all colleges
// @Tags Colleges
// @Produce json
// @Success 200 {array} University
// @Failure 500 {object} responses.MessageResponse
// @Router /universities [get]
func (uc *UniversityController) GetAll(c *gin.Context) {
	universities, err := uc.repo.GetAll()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, universities)
}

// GetOne godoc
// @Summary Fetch a college by id or name
// @Tags Colleges
// @Produce json
// @Param id query int false "College ID"
// @Param name query string false "College name"
// @Success 200 {object} University
// @Failure 400 {object} responses.MessageResponse "Neither id nor name supplied"
// @Failure 404 {object} responses.MessageResponse
// @Router /university [get]
func (uc *UniversityController) GetOne(c *gin.Context) {
	name := c.Query("name")
	idStr := c.Query("id")

	if name == "" && idStr == "" {
		responses.BadRequest(c, "Missing college name or ID")
		return
	}

	var (
		uni *University
		err error
	)
	if name != "" {
		uni, err = uc.repo.GetByName(name)
	} else {
		id, parseErr := strconv.ParseUint(idStr, 10, 32)
		if parseErr != nil {
			responses.BadRequest(c, "Invalid college ID")
			return
		}
		uni, err = uc.repo.GetByID(uint(id))
	}
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if uni == nil {
		responses.NotFound(c, "College")
		return
	}
	c.JSON(http.StatusOK, uni)
}

// Search godoc
// @Summary List or search colleges for the admin panel
// @Tags Colleges
// @Produce json
// @Param search query string false "Match against college name"
// @Success 200 {array} University
// @Failure 500 {object} responses.MessageResponse
// @Router /fetchColleges [get]
func (uc *UniversityController) Search(c *gin.Context) {
	universities, err := uc.repo.Search(c.Query("search"))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, universities)
}

// AddCollege godoc
// @Summary Create a college
// @Tags Colleges
// @Accept json
// @Produce json
// @Param college body UpsertCollegeRequest true "College data"
// @Success 201 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /add-college [post]
func (uc *UniversityController) AddCollege(c *gin.Context) {
	var req UpsertCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	uni := University{
		Name:        req.Name,
		Location:    req.Location,
		Founded:     req.Founded,
		Description: req.Description,
		Emblem:      req.LogoURL,
		ImageURL:    req.PictureURL,
		Links:       req.Links,
	}
	if err := uc.repo.Create(&uni); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendMessage(c, http.StatusCreated, "College added successfully!")
}

// EditCollege godoc
// @Summary Update a college
// @Tags Colleges
// @Accept json
// @Produce json
// @Param collegeId path int true "College ID"
// @Param college body UpsertCollegeRequest true "College data"
// @Success 200 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 404 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /edit-college/{collegeId} [put]
func (uc *UniversityController) EditCollege(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("collegeId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid college ID")
		return
	}

	var req UpsertCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	uni, err := uc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if uni == nil {
		responses.NotFound(c, "College")
		return
	}

	uni.Name = req.Name
	uni.Location = req.Location
	uni.Founded = req.Founded
	uni.Description = req.Description
	uni.Emblem = req.LogoURL
	uni.ImageURL = req.PictureURL
	if req.Links != nil {
		uni.Links = req.Links
	}

	if err := uc.repo.Update(uni); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendMessage(c, http.StatusOK, "College updated successfully!")
}

// DeleteCollege godoc
// @Summary Delete a college
// @Tags Colleges
// @Produce json
// @Param collegeId path int true "College ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /delete-college/{collegeId} [delete]
func (uc *UniversityController) DeleteCollege(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("collegeId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid college ID")
		return
	}
	if err := uc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendMessage(c, http.StatusOK, "College deleted successfully!")
}
