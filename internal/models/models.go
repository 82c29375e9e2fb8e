package models

import "time"

type Teacher struct {
    ID           uint   `gorm:"primaryKey" json:"id"`
    Username     string `gorm:"uniqueIndex;not null" json:"username"`
    PasswordHash string `gorm:"not null" json:"-"`
}

type Class struct {
    ID          uint      `gorm:"primaryKey" json:"id"`
    Name        string    `gorm:"not null" json:"name"`
    Description *string   `json:"description"`
    TeacherID   uint      `gorm:"not null;index" json:"teacher_id"`
    CreatedAt   time.Time `json:"created_at"`

    Teacher Teacher `gorm:"foreignKey:TeacherID" json:"-"`
}

type Material struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    Title     string    `gorm:"not null" json:"title"`
    Content   string    `gorm:"not null" json:"content"`
    ClassID   uint      `gorm:"not null;index" json:"class_id"`
    CreatedAt time.Time `json:"created_at"`

    Class Class `gorm:"foreignKey:ClassID" json:"-"`
}

type Student struct {
    ID      uint   `gorm:"primaryKey" json:"id"`
    Name    string `gorm:"not null" json:"name"`
    ClassID uint   `gorm:"not null;index" json:"class_id"`

    Class Class `gorm:"foreignKey:ClassID" json:"-"`
}

// StudentUpdate is append-only: rows are never edited or deleted once written.
type StudentUpdate struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    StudentID uint      `gorm:"not null;index" json:"student_id"`
    Content   string    `gorm:"not null" json:"content"`
    CreatedAt time.Time `json:"created_at"`

    Student Student `gorm:"foreignKey:StudentID" json:"-"`
}
