package response

import "sort"

type LinkResponse struct {
	CardNumber int    `json:"card_number"`
	PatronID   string `json:"patron_id"`
}

func FromLinks(links map[int]string) []LinkResponse {
	result := make([]LinkResponse, 0, len(links))
	for number, id := range links {
		result = append(result, LinkResponse{CardNumber: number, PatronID: id})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CardNumber < result[j].CardNumber
	})
	return result
}
