package api

import (
    "context"
    "log"
    "net/http"
    "strconv"
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/smis-portal/smis-back/internal/auth"
    "github.com/smis-portal/smis-back/internal/config"
    "github.com/smis-portal/smis-back/internal/models"
    "github.com/smis-portal/smis-back/internal/roster"
)

// Store is everything the resource handlers need from the database layer.
// *db.Store satisfies it; tests plug in an in-memory fake.
type Store interface {
    Ping() error
    TeacherByUsername(ctx context.Context, username string) (*models.Teacher, error)
    ListClasses(ctx context.Context) ([]models.Class, error)
    CreateClass(ctx context.Context, c *models.Class) error
    ListMaterials(ctx context.Context, classID uint) ([]models.Material, error)
    CreateMaterial(ctx context.Context, m *models.Material) error
    ListStudents(ctx context.Context, classID uint) ([]models.Student, error)
    CreateStudent(ctx context.Context, s *models.Student) error
    CreateStudents(ctx context.Context, students []models.Student) error
    ListUpdates(ctx context.Context, studentID uint) ([]models.StudentUpdate, error)
    CreateUpdate(ctx context.Context, u *models.StudentUpdate) error
}

type Handler struct {
    store Store
    // legacyOwner, when set, attributes every new class to this fixed
    // account instead of the authenticated teacher.
    legacyOwner string
}

func NewHandler(store Store, cfg *config.Config) *Handler {
    return &Handler{store: store, legacyOwner: cfg.LegacyClassOwner}
}

// CreateClassRequest is the request body for creating a class
type CreateClassRequest struct {
    Name        string  `json:"name"`
    Description *string `json:"description"`
}

// CreateMaterialRequest is the request body for attaching a material
type CreateMaterialRequest struct {
    Title   string `json:"title"`
    Content string `json:"content"`
}

// CreateStudentRequest is the request body for enrolling a student
type CreateStudentRequest struct {
    Name string `json:"name"`
}

// CreateUpdateRequest is the request body for a progress update
type CreateUpdateRequest struct {
    Content string `json:"content"`
}

// ListClasses godoc
// @Summary      List classes
// @Description  Returns all classes, newest first
// @Tags         classes
// @Produce      json
// @Success      200 {array} models.Class
// @Failure      500 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
    classes, err := h.store.ListClasses(c.Request.Context())
    if err != nil {
        log.Println("Error fetching classes:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching classes"})
        return
    }
    c.JSON(http.StatusOK, classes)
}

// CreateClass godoc
// @Summary      Create a class
// @Description  Creates a class owned by the authenticated teacher
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        body  body  CreateClassRequest  true  "Class info"
// @Success      201   {object} models.Class
// @Failure      400   {object} map[string]string
// @Failure      500   {object} map[string]string
// @Security     BearerAuth
// @Router       /api/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
    var req CreateClassRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
        return
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Class name is required"})
        return
    }

    ownerID := c.GetUint(auth.CtxTeacherID)
    if h.legacyOwner != "" {
        teacher, err := h.store.TeacherByUsername(c.Request.Context(), h.legacyOwner)
        if err != nil {
            log.Println("Error resolving class owner:", err)
            c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error adding class"})
            return
        }
        ownerID = teacher.ID
    }

    class := models.Class{Name: req.Name, Description: req.Description, TeacherID: ownerID}
    if err := h.store.CreateClass(c.Request.Context(), &class); err != nil {
        log.Println("Error adding class:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error adding class"})
        return
    }
    c.JSON(http.StatusCreated, class)
}

// ListMaterials godoc
// @Summary      List class materials
// @Description  Returns materials for a class, newest first
// @Tags         materials
// @Produce      json
// @Param        classId  path  int  true  "Class ID"
// @Success      200 {array} models.Material
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/classes/{classId}/materials [get]
func (h *Handler) ListMaterials(c *gin.Context) {
    classID, ok := pathID(c, "classId")
    if !ok {
        return
    }
    materials, err := h.store.ListMaterials(c.Request.Context(), classID)
    if err != nil {
        log.Println("Error fetching materials:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching materials"})
        return
    }
    c.JSON(http.StatusOK, materials)
}

// CreateMaterial godoc
// @Summary      Attach a material to a class
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        classId  path  int  true  "Class ID"
// @Param        body  body  CreateMaterialRequest  true  "Material info"
// @Success      201   {object} models.Material
// @Failure      400   {object} map[string]string
// @Failure      500   {object} map[string]string
// @Security     BearerAuth
// @Router       /api/classes/{classId}/materials [post]
func (h *Handler) CreateMaterial(c *gin.Context) {
    classID, ok := pathID(c, "classId")
    if !ok {
        return
    }
    var req CreateMaterialRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
        return
    }
    req.Title = strings.TrimSpace(req.Title)
    req.Content = strings.TrimSpace(req.Content)
    if req.Title == "" || req.Content == "" {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
        return
    }

    material := models.Material{Title: req.Title, Content: req.Content, ClassID: classID}
    if err := h.store.CreateMaterial(c.Request.Context(), &material); err != nil {
        log.Println("Error adding material:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error adding material"})
        return
    }
    c.JSON(http.StatusCreated, material)
}

// ListStudents godoc
// @Summary      List students in a class
// @Description  Returns the class roster in alphabetical order
// @Tags         students
// @Produce      json
// @Param        classId  path  int  true  "Class ID"
// @Success      200 {array} models.Student
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/classes/{classId}/students [get]
func (h *Handler) ListStudents(c *gin.Context) {
    classID, ok := pathID(c, "classId")
    if !ok {
        return
    }
    students, err := h.store.ListStudents(c.Request.Context(), classID)
    if err != nil {
        log.Println("Error fetching students:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching students"})
        return
    }
    c.JSON(http.StatusOK, students)
}

// CreateStudent godoc
// @Summary      Enroll a student in a class
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        classId  path  int  true  "Class ID"
// @Param        body  body  CreateStudentRequest  true  "Student info"
// @Success      201   {object} models.Student
// @Failure      400   {object} map[string]string
// @Failure      500   {object} map[string]string
// @Security     BearerAuth
// @Router       /api/classes/{classId}/students [post]
func (h *Handler) CreateStudent(c *gin.Context) {
    classID, ok := pathID(c, "classId")
    if !ok {
        return
    }
    var req CreateStudentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
        return
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Student name is required"})
        return
    }

    student := models.Student{Name: req.Name, ClassID: classID}
    if err := h.store.CreateStudent(c.Request.Context(), &student); err != nil {
        log.Println("Error adding student:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error adding student"})
        return
    }
    c.JSON(http.StatusCreated, student)
}

// ImportStudents godoc
// @Summary      Import a class roster from xlsx
// @Description  Reads student names from the first column of the uploaded sheet and enrolls them all
// @Tags         students
// @Accept       multipart/form-data
// @Produce      json
// @Param        classId  path  int   true  "Class ID"
// @Param        file     formData  file  true  "Roster spreadsheet"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/classes/{classId}/students/import [post]
func (h *Handler) ImportStudents(c *gin.Context) {
    classID, ok := pathID(c, "classId")
    if !ok {
        return
    }
    fileHeader, err := c.FormFile("file")
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Roster file is required"})
        return
    }
    f, err := fileHeader.Open()
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Roster file is required"})
        return
    }
    defer f.Close()

    names, err := roster.Parse(f)
    if err != nil {
        log.Println("Failed to parse roster:", err)
        c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid roster file"})
        return
    }
    if len(names) == 0 {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Roster contains no student names"})
        return
    }

    students := make([]models.Student, 0, len(names))
    for _, name := range names {
        students = append(students, models.Student{Name: name, ClassID: classID})
    }
    if err := h.store.CreateStudents(c.Request.Context(), students); err != nil {
        log.Println("Error importing students:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error importing students"})
        return
    }
    c.JSON(http.StatusCreated, gin.H{"message": "Roster imported", "count": len(students)})
}

// ListUpdates godoc
// @Summary      List progress updates for a student
// @Description  Returns updates newest first
// @Tags         updates
// @Produce      json
// @Param        studentId  path  int  true  "Student ID"
// @Success      200 {array} models.StudentUpdate
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/students/{studentId}/updates [get]
func (h *Handler) ListUpdates(c *gin.Context) {
    studentID, ok := pathID(c, "studentId")
    if !ok {
        return
    }
    updates, err := h.store.ListUpdates(c.Request.Context(), studentID)
    if err != nil {
        log.Println("Error fetching student updates:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching student updates"})
        return
    }
    c.JSON(http.StatusOK, updates)
}

// CreateUpdate godoc
// @Summary      Record a progress update for a student
// @Tags         updates
// @Accept       json
// @Produce      json
// @Param        studentId  path  int  true  "Student ID"
// @Param        body  body  CreateUpdateRequest  true  "Update info"
// @Success      201   {object} models.StudentUpdate
// @Failure      400   {object} map[string]string
// @Failure      500   {object} map[string]string
// @Security     BearerAuth
// @Router       /api/students/{studentId}/updates [post]
func (h *Handler) CreateUpdate(c *gin.Context) {
    studentID, ok := pathID(c, "studentId")
    if !ok {
        return
    }
    var req CreateUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
        return
    }
    req.Content = strings.TrimSpace(req.Content)
    if req.Content == "" {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Update content is required"})
        return
    }

    update := models.StudentUpdate{StudentID: studentID, Content: req.Content}
    if err := h.store.CreateUpdate(c.Request.Context(), &update); err != nil {
        log.Println("Error adding student update:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error adding student update"})
        return
    }
    c.JSON(http.StatusCreated, update)
}

// pathID parses a numeric path parameter, responding 400 itself when the
// value is not a valid id.
func pathID(c *gin.Context, name string) (uint, bool) {
    id, err := strconv.ParseUint(c.Param(name), 10, 32)
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
        return 0, false
    }
    return uint(id), true
}
