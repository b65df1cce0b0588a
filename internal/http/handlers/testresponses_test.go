package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// geminiTextResponse fakes a single-candidate generateContent reply.
func geminiTextResponse(text string) *http.Response {
	body := fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

const scholarshipListingPayload = `[
  {
    "id": 7,
    "title": {"en": "Global Health Fellowship", "ar": "زمالة الصحة العالمية"},
    "university": "Karolinska Institute",
    "country": {"en": "Sweden", "ar": "السويد"},
    "countryCode": "SE",
    "deadline": "2026-10-15",
    "level": {"en": "PhD", "ar": "دكتوراه"},
    "specialty": {"en": "Health", "ar": "الصحة"},
    "isOpen": true,
    "isOpeningSoon": false,
    "summary": {"en": "Funded PhD positions", "ar": "مقاعد دكتوراه ممولة"},
    "requirements": {"en": ["Masters degree"], "ar": ["شهادة ماجستير"]},
    "benefits": {"en": ["Monthly stipend"], "ar": ["راتب شهري"]},
    "applyLink": "https://example.org/fellowship"
  }
]`
