package models

// Reward is an earned badge or milestone for a user.
// Collection: reward
type Reward struct {
	UserID        string  `json:"user_id" bson:"user_id"`
	RewardType    string  `json:"reward_type" bson:"reward_type"`
	NameEN        string  `json:"name_en" bson:"name_en"`
	NameZH        string  `json:"name_zh" bson:"name_zh"`
	DescriptionEN *string `json:"description_en,omitempty" bson:"description_en,omitempty"`
	DescriptionZH *string `json:"description_zh,omitempty" bson:"description_zh,omitempty"`
	Points        int     `json:"points" bson:"points"`
}

// RewardView is the single-language projection of a reward.
type RewardView struct {
	RewardType  string  `json:"reward_type"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Points      int     `json:"points"`
}

func (r *Reward) Localize(loc Locale) RewardView {
	return RewardView{
		RewardType:  r.RewardType,
		Name:        pick(loc, r.NameEN, r.NameZH),
		Description: pickPtr(loc, r.DescriptionEN, r.DescriptionZH),
		Points:      r.Points,
	}
}
