package db

import (
    "context"
    "fmt"
    "log"

    "golang.org/x/crypto/bcrypt"
    "gorm.io/driver/postgres"
    "gorm.io/gorm"

    "github.com/smis-portal/smis-back/internal/models"
)

// Store wraps the shared gorm pool. It is built once in main and passed to
// whoever needs it, so tests can swap in a fake behind the handler interfaces.
type Store struct {
    db *gorm.DB
}

func New(dsn string) (*Store, error) {
    gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        return nil, fmt.Errorf("failed to connect database: %w", err)
    }

    // AutoMigrate will create/update tables automatically
    err = gdb.AutoMigrate(
        &models.Teacher{},
        &models.Class{},
        &models.Material{},
        &models.Student{},
        &models.StudentUpdate{},
    )
    if err != nil {
        return nil, fmt.Errorf("failed to migrate database: %w", err)
    }

    return &Store{db: gdb}, nil
}

// SeedDefaultTeacher provisions the single well-known account if it does not
// exist yet. The portal has no signup; this is the only way a teacher row is
// ever created.
func (s *Store) SeedDefaultTeacher(ctx context.Context, username, password string) error {
    var existing models.Teacher
    err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
    if err == nil {
        return nil
    }
    if err != gorm.ErrRecordNotFound {
        return err
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return err
    }
    t := models.Teacher{Username: username, PasswordHash: string(hash)}
    if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
        return err
    }
    log.Printf("Default teacher created: %s", username)
    return nil
}

func (s *Store) Ping() error {
    sqlDB, err := s.db.DB()
    if err != nil {
        return err
    }
    return sqlDB.Ping()
}

func (s *Store) TeacherByUsername(ctx context.Context, username string) (*models.Teacher, error) {
    var t models.Teacher
    if err := s.db.WithContext(ctx).Where("username = ?", username).First(&t).Error; err != nil {
        return nil, err
    }
    return &t, nil
}

func (s *Store) ListClasses(ctx context.Context) ([]models.Class, error) {
    classes := []models.Class{}
    if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&classes).Error; err != nil {
        return nil, err
    }
    return classes, nil
}

func (s *Store) CreateClass(ctx context.Context, c *models.Class) error {
    return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) ListMaterials(ctx context.Context, classID uint) ([]models.Material, error) {
    materials := []models.Material{}
    err := s.db.WithContext(ctx).
        Where("class_id = ?", classID).
        Order("created_at DESC").
        Find(&materials).Error
    if err != nil {
        return nil, err
    }
    return materials, nil
}

func (s *Store) CreateMaterial(ctx context.Context, m *models.Material) error {
    return s.db.WithContext(ctx).Create(m).Error
}

// ListStudents returns the roster alphabetically, not by insertion order.
func (s *Store) ListStudents(ctx context.Context, classID uint) ([]models.Student, error) {
    students := []models.Student{}
    err := s.db.WithContext(ctx).
        Where("class_id = ?", classID).
        Order("name ASC").
        Find(&students).Error
    if err != nil {
        return nil, err
    }
    return students, nil
}

func (s *Store) CreateStudent(ctx context.Context, st *models.Student) error {
    return s.db.WithContext(ctx).Create(st).Error
}

func (s *Store) CreateStudents(ctx context.Context, students []models.Student) error {
    return s.db.WithContext(ctx).Create(&students).Error
}

func (s *Store) ListUpdates(ctx context.Context, studentID uint) ([]models.StudentUpdate, error) {
    updates := []models.StudentUpdate{}
    err := s.db.WithContext(ctx).
        Where("student_id = ?", studentID).
        Order("created_at DESC").
        Find(&updates).Error
    if err != nil {
        return nil, err
    }
    return updates, nil
}

func (s *Store) CreateUpdate(ctx context.Context, u *models.StudentUpdate) error {
    return s.db.WithContext(ctx).Create(u).Error
}

// Counts feeds the daily activity-summary job.
type Counts struct {
    Classes   int64
    Materials int64
    Students  int64
    Updates   int64
}

func (s *Store) CountRecords(ctx context.Context) (Counts, error) {
    var c Counts
    if err := s.db.WithContext(ctx).Model(&models.Class{}).Count(&c.Classes).Error; err != nil {
        return c, err
    }
    if err := s.db.WithContext(ctx).Model(&models.Material{}).Count(&c.Materials).Error; err != nil {
        return c, err
    }
    if err := s.db.WithContext(ctx).Model(&models.Student{}).Count(&c.Students).Error; err != nil {
        return c, err
    }
    if err := s.db.WithContext(ctx).Model(&models.StudentUpdate{}).Count(&c.Updates).Error; err != nil {
        return c, err
    }
    return c, nil
}
