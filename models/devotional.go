package models

// Devotional is the daily devotional document, one per calendar day.
// Collection: devotional
type Devotional struct {
	Day                string  `json:"day" bson:"day"`
	TitleEN            string  `json:"title_en" bson:"title_en"`
	TitleZH            string  `json:"title_zh" bson:"title_zh"`
	PassageEN          *string `json:"passage_en,omitempty" bson:"passage_en,omitempty"`
	PassageZH          *string `json:"passage_zh,omitempty" bson:"passage_zh,omitempty"`
	ContentEN          string  `json:"content_en" bson:"content_en"`
	ContentZH          string  `json:"content_zh" bson:"content_zh"`
	ReflectionPromptEN *string `json:"reflection_prompt_en,omitempty" bson:"reflection_prompt_en,omitempty"`
	ReflectionPromptZH *string `json:"reflection_prompt_zh,omitempty" bson:"reflection_prompt_zh,omitempty"`
}

// DevotionalView is the single-language projection served to clients.
type DevotionalView struct {
	Day              string  `json:"day"`
	Title            string  `json:"title"`
	Passage          *string `json:"passage"`
	Content          string  `json:"content"`
	ReflectionPrompt *string `json:"reflection_prompt"`
}

// Localize projects the bilingual document into the requested language.
func (d *Devotional) Localize(loc Locale) DevotionalView {
	return DevotionalView{
		Day:              d.Day,
		Title:            pick(loc, d.TitleEN, d.TitleZH),
		Passage:          pickPtr(loc, d.PassageEN, d.PassageZH),
		Content:          pick(loc, d.ContentEN, d.ContentZH),
		ReflectionPrompt: pickPtr(loc, d.ReflectionPromptEN, d.ReflectionPromptZH),
	}
}

// CreateDevotionalRequest is the payload for POST /api/devotionals.
type CreateDevotionalRequest struct {
	Day                string  `json:"day" binding:"required"`
	TitleEN            string  `json:"title_en" binding:"required"`
	TitleZH            string  `json:"title_zh" binding:"required"`
	PassageEN          *string `json:"passage_en"`
	PassageZH          *string `json:"passage_zh"`
	ContentEN          string  `json:"content_en" binding:"required"`
	ContentZH          string  `json:"content_zh" binding:"required"`
	ReflectionPromptEN *string `json:"reflection_prompt_en"`
	ReflectionPromptZH *string `json:"reflection_prompt_zh"`
}
