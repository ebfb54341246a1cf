package residency

import "errors"

var (
	// 大陸名が一覧に無い場合のエラー
	ErrInvalidContinent = errors.New("invalid continent")

	// 日付がYYYY-MM-DDとして読めない場合のエラー
	ErrInvalidDateFormat = errors.New("invalid date format")

	// 開始日が終了日より後の場合のエラー
	ErrInvertedRange = errors.New("start date is after end date")

	// 他の滞在と期間が重なる場合のエラー
	ErrOverlappingRange = errors.New("range overlaps another stay")

	// 滞在が見つからない場合のエラー
	ErrNotFound = errors.New("stay not found")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidContinent, "InvalidContinent"},
	{ErrInvalidDateFormat, "InvalidDateFormat"},
	{ErrInvertedRange, "InvertedRange"},
	{ErrOverlappingRange, "OverlappingRange"},
	{ErrNotFound, "NotFound"},
}

// Kindはerrの種類名を返す。
// ledgerのエラーでなければ空文字列を返す。
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
