package course

import (
	"time"

	"gorm.io/datatypes"
)

// ItemBase holds the fields shared by all content item kinds
type ItemBase struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	OwnerID   uint      `json:"owner_id" gorm:"index;not null"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is implemented by every concrete content kind. Render returns the
// type-specific representation handed to the presentation layer.
type Item interface {
	GetID() uint
	ItemKind() string
	Render() map[string]interface{}
}

// GetID returns the item's primary key; promoted onto every concrete kind
func (b *ItemBase) GetID() uint { return b.ID }

// Text stores written content
type Text struct {
	ItemBase
	Body string `json:"body" gorm:"type:text"`
}

// Video stores an embeddable video reference plus fetched oEmbed metadata
type Video struct {
	ItemBase
	URL  string         `json:"url"`
	Meta datatypes.JSON `json:"meta,omitempty"`
}

// Image stores the location of an image blob
type Image struct {
	ItemBase
	FilePath string `json:"file_path"`
}

// File stores the location of an uploaded file blob, such as a PDF
type File struct {
	ItemBase
	FilePath string `json:"file_path"`
}

func (t *Text) ItemKind() string  { return ItemTypeText }
func (v *Video) ItemKind() string { return ItemTypeVideo }
func (i *Image) ItemKind() string { return ItemTypeImage }
func (f *File) ItemKind() string  { return ItemTypeFile }

func (t *Text) Render() map[string]interface{} {
	return map[string]interface{}{
		"kind":  ItemTypeText,
		"title": t.Title,
		"body":  t.Body,
	}
}

func (v *Video) Render() map[string]interface{} {
	rendered := map[string]interface{}{
		"kind":      ItemTypeVideo,
		"title":     v.Title,
		"embed_url": v.URL,
	}
	if len(v.Meta) > 0 {
		rendered["meta"] = v.Meta
	}
	return rendered
}

func (i *Image) Render() map[string]interface{} {
	return map[string]interface{}{
		"kind":  ItemTypeImage,
		"title": i.Title,
		"src":   i.FilePath,
	}
}

func (f *File) Render() map[string]interface{} {
	return map[string]interface{}{
		"kind":  ItemTypeFile,
		"title": f.Title,
		"href":  f.FilePath,
	}
}

// NewItem returns an empty item of the given kind, ready to be loaded or
// filled. Unknown tags fail with ErrInvalidItemType.
func NewItem(tag string) (Item, error) {
	switch tag {
	case ItemTypeText:
		return &Text{}, nil
	case ItemTypeVideo:
		return &Video{}, nil
	case ItemTypeImage:
		return &Image{}, nil
	case ItemTypeFile:
		return &File{}, nil
	}
	return nil, ErrInvalidItemType
}
