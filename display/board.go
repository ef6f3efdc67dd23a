package display

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"phrasebot/phrases"
)

type DisplayElement struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
	Text string
}

// Board stores elements as rows of the display_elements table.
type Board struct {
	db *gorm.DB
}

func NewBoard(db *gorm.DB) (*Board, error) {
	if err := db.AutoMigrate(&DisplayElement{}); err != nil {
		return nil, err
	}
	return &Board{db: db}, nil
}

func (b *Board) Element(ctx context.Context, id string) (phrases.Element, error) {
	var element DisplayElement
	err := b.db.WithContext(ctx).Where("name = ?", id).First(&element).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, phrases.ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &boardElement{db: b.db, name: element.Name}, nil
}

func (b *Board) Create(ctx context.Context, id string) (string, error) {
	element := DisplayElement{Name: id}
	result := b.db.WithContext(ctx).Where(DisplayElement{Name: id}).FirstOrCreate(&element)
	if result.Error != nil {
		return "", result.Error
	}
	return id, nil
}

func (b *Board) Text(ctx context.Context, id string) (string, error) {
	var element DisplayElement
	err := b.db.WithContext(ctx).Where("name = ?", id).First(&element).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", phrases.ErrTargetNotFound
	}
	return element.Text, err
}

type boardElement struct {
	db   *gorm.DB
	name string
}

func (e *boardElement) SetText(ctx context.Context, text string) error {
	if e == nil {
		return phrases.ErrTargetNotFound
	}
	result := e.db.WithContext(ctx).
		Model(&DisplayElement{}).
		Where("name = ?", e.name).
		Update("text", text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return phrases.ErrTargetNotFound
	}
	return nil
}
