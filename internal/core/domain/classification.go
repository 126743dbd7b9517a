package domain

// Classification is an archive classification (klasifikasi arsip). Its code is printed in letter numbers.
type Classification struct {
	ClassificationID string `json:"classificationID"`
	Code             string `json:"code"`
	Name             string `json:"name"`
}
