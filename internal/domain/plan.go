package domain

// PlanDetails is a subscription offering as shown on the pricing page.
// Admins can replace the whole set; identifiers stay within the closed
// Plan enumeration.
type PlanDetails struct {
	ID        Plan     `json:"id"`
	Name      Text     `json:"name"`
	Price     string   `json:"price"`
	Features  TextList `json:"features"`
	IsPopular bool     `json:"is_popular,omitempty"`
}

// DefaultPlans returns the seeded pricing catalogue. Admin edits replace it
// wholesale, so callers always get a fresh copy.
func DefaultPlans() []PlanDetails {
	return []PlanDetails{
		{
			ID:    PlanFree,
			Name:  Text{EN: "Explorer", AR: "المستكشف"},
			Price: "$0",
			Features: TextList{
				EN: []string{"3 CV Analyses", "3 SOP Analyses"},
				AR: []string{"3 تحليلات للسيرة الذاتية", "3 تحليلات لخطاب الدافع"},
			},
		},
		{
			ID:    PlanPro,
			Name:  Text{EN: "Navigator", AR: "الملاح"},
			Price: "$20",
			Features: TextList{
				EN: []string{"15 CV Analyses", "15 SOP Analyses", "1 Expert Consultation", "1 Full Application Review"},
				AR: []string{"15 تحليل للسيرة الذاتية", "15 تحليل لخطاب الدافع", "1 استشارة مع خبير", "1 تقييم كامل لملف التقديم"},
			},
			IsPopular: true,
		},
		{
			ID:    PlanPremium,
			Name:  Text{EN: "Stellar", AR: "النجمي"},
			Price: "$50",
			Features: TextList{
				EN: []string{"100 CV Analyses", "100 SOP Analyses", "3 Expert Consultations", "3 Full Application Reviews"},
				AR: []string{"100 تحليل للسيرة الذاتية", "100 تحليل لخطاب الدافع", "3 استشارات مع خبير", "3 تقييمات كاملة لملفات التقديم"},
			},
		},
	}
}
