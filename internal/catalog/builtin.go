package catalog

// defaultEntries is the catalog used when no other source can be read.
var defaultEntries = []Entry{
	{Name: "김치찌개", Tags: []string{"점심", "저녁", "아침", "국물있음", "매움", "안매움", "혼자", "여럿이"}},
	{Name: "된장찌개", Tags: []string{"아침", "점심", "저녁", "국물있음", "안매움", "혼자", "여럿이"}},
	{Name: "불고기", Tags: []string{"아침", "점심", "국물없음", "혼자", "여럿이", "안매움"}},
	{Name: "오징어볶음", Tags: []string{"아침", "점심", "저녁", "국물없음", "매움", "안매움", "혼자", "여럿이"}},
	{Name: "고등어구이", Tags: []string{"아침", "점심", "국물없음", "혼자", "여럿이", "다이어트", "안매움"}},
	{Name: "갈치조림", Tags: []string{"아침", "점심", "국물없음", "혼자", "여럿이", "매움", "안매움"}},
	{Name: "청국장", Tags: []string{"점심", "아침", "국물있음", "여럿이", "안매움"}},
	{Name: "순대국밥", Tags: []string{"아침", "저녁", "국물있음", "안매움", "혼자", "여럿이"}},
	{Name: "돼지국밥", Tags: []string{"점심", "아침", "국물있음", "안매움", "혼자", "여럿이"}},
	{Name: "소머리국밥", Tags: []string{"점심", "저녁", "국물있음", "안매움", "혼자", "여럿이"}},
	{Name: "육개장", Tags: []string{"점심", "저녁", "국물있음", "안매움", "혼자", "여럿이"}},
	{Name: "감자탕", Tags: []string{"저녁", "야식", "국물있음", "안매움", "여럿이", "혼자"}},
	{Name: "설렁탕", Tags: []string{"점심", "저녁", "국물있음", "안매움", "여럿이", "혼자"}},
	{Name: "곰탕", Tags: []string{"아침", "점심", "국물있음", "안매움", "혼자", "여럿이"}},
	{Name: "갈비탕", Tags: []string{"점심", "국물있음", "혼자", "여럿이", "안매움"}},
	{Name: "뼈해장국", Tags: []string{"저녁", "아침", "국물있음", "혼자", "여럿이", "야식"}},
	{Name: "추어탕", Tags: []string{"점심", "저녁", "국물있음", "안매움", "여럿이", "혼자"}},
	{Name: "냉면 (물냉/비냉)", Tags: []string{"점심", "간식", "국물있음", "국물없음", "매움", "안매움", "혼자", "여럿이"}},
	{Name: "칼국수", Tags: []string{"점심", "국물있음", "안매움", "여럿이"}},
	{Name: "잔치국수", Tags: []string{"점심", "간식", "국물있음", "혼자", "여럿이", "안매움", "다이어트"}},
	{Name: "비빔국수", Tags: []string{"점심", "간식", "국물없음", "혼자", "여럿이", "매움", "안매움"}},
	{Name: "우동", Tags: []string{"점심", "저녁", "국물있음", "혼자", "간식"}},
	{Name: "라면", Tags: []string{"아침", "점심", "저녁", "간식", "야식", "혼자", "여럿이", "매움", "안매움", "국물있음"}},
	{Name: "쫄면", Tags: []string{"점심", "간식", "혼자", "매움", "국물없음"}},
	{Name: "짬뽕", Tags: []string{"점심", "야식", "매움", "혼자", "여럿이", "국물있음"}},
	{Name: "짜장면", Tags: []string{"점심", "야식", "간식", "안매움", "혼자", "여럿이", "국물없음"}},
	{Name: "막국수", Tags: []string{"점심", "간식", "매움", "안매움", "혼자", "여럿이", "국물없음"}},
	{Name: "삼겹살", Tags: []string{"저녁", "회식", "국물없음", "안매움", "여럿이", "야식"}},
	{Name: "소불고기", Tags: []string{"점심", "국물없음", "여럿이", "안매움", "혼자"}},
	{Name: "돼지불백", Tags: []string{"아침", "점심", "국물없음", "안매움", "혼자", "여럿이"}},
	{Name: "닭갈비", Tags: []string{"저녁", "점심", "국물없음", "안매움", "매움", "여럿이", "야식"}},
	{Name: "LA갈비", Tags: []string{"저녁", "국물없음", "안매움", "여럿이", "회식"}},
	{Name: "닭한마리", Tags: []string{"점심", "저녁", "국물있음", "여럿이", "안매움"}},
	{Name: "오리불고기", Tags: []string{"점심", "저녁", "국물없음", "안매움", "여럿이"}},
	{Name: "제육볶음", Tags: []string{"아침", "점심", "저녁", "국물없음", "안매움", "혼자", "여럿이"}},
	{Name: "낙지볶음", Tags: []string{"점심", "저녁", "국물없음", "매움", "여럿이", "야식"}},
	{Name: "두루치기", Tags: []string{"점심", "국물없음", "안매움", "여럿이"}},
	{Name: "닭볶음탕", Tags: []string{"점심", "저녁", "국물없음", "매움", "여럿이"}},
	{Name: "김치볶음밥", Tags: []string{"아침", "점심", "저녁", "국물없음", "안매움", "혼자", "다이어트"}},
	{Name: "참치김치볶음", Tags: []string{"아침", "점심", "국물없음", "안매움", "혼자", "다이어트"}},
	{Name: "가지볶음", Tags: []string{"점심", "저녁", "국물없음", "안매움", "혼자", "여럿이", "다이어트"}},
	{Name: "고추장불고기", Tags: []string{"점심", "저녁", "국물없음", "매움", "혼자", "여럿이", "야식"}},
	{Name: "코다리찜", Tags: []string{"점심", "저녁", "국물없음", "매움", "여럿이", "야식"}},
	{Name: "떡볶이", Tags: []string{"점심", "야식", "간식", "국물없음", "국물있음", "매움", "혼자", "여럿이"}},
	{Name: "김밥", Tags: []string{"아침", "점심", "간식", "국물없음", "안매움", "혼자", "다이어트"}},
	{Name: "라볶이", Tags: []string{"점심", "간식", "야식", "국물없음", "매움", "혼자", "여럿이"}},
	{Name: "오므라이스", Tags: []string{"아침", "점심", "국물없음", "안매움", "혼자"}},
	{Name: "볶음우동", Tags: []string{"점심", "야식", "간식", "국물없음", "매움", "안매움", "혼자", "여럿이"}},
	{Name: "돈까스", Tags: []string{"점심", "저녁", "국물없음", "안매움", "여럿이", "데이트"}},
	{Name: "장어덮밥", Tags: []string{"저녁", "점심", "국물없음", "안매움", "혼자", "여럿이"}},
	{Name: "생선까스", Tags: []string{"점심", "국물없음", "안매움", "혼자", "여럿이"}},
	{Name: "회덮밥", Tags: []string{"점심", "저녁", "국물없음", "안매움", "여럿이", "다이어트"}},
	{Name: "해물탕", Tags: []string{"저녁", "국물있음", "회식", "매움", "안매움", "여럿이"}},
	{Name: "알탕", Tags: []string{"저녁", "국물있음", "매움", "여럿이", "야식"}},
	{Name: "매운탕", Tags: []string{"저녁", "회식", "국물있음", "매움", "여럿이"}},
	{Name: "아구찜", Tags: []string{"점심", "저녁", "회식", "야식", "국물없음", "매움", "여럿이"}},
	{Name: "낙지연포탕", Tags: []string{"점심", "저녁", "국물잇음", "안매움", "회식", "여럿이"}},
	{Name: "부대찌개", Tags: []string{"점심", "저녁", "국물있음", "안매움", "여럿이"}},
	{Name: "샤브샤브", Tags: []string{"점심", "저녁", "회식", "국물있음", "안매움", "여럿이", "다이어트", "데이트"}},
	{Name: "초밥정식", Tags: []string{"점심", "저녁", "국물없음", "안매움", "혼자", "여럿이", "데이트"}},
	{Name: "함박스테이크", Tags: []string{"점심", "저녁", "국물없음", "안매움", "혼자", "여럿이"}},
	{Name: "파스타", Tags: []string{"점심", "저녁", "국물없음", "안매움", "여럿이", "데이트"}},
	{Name: "피자", Tags: []string{"점심", "간식", "야식", "국물없음", "안매움", "여럿이"}},
	{Name: "햄버거", Tags: []string{"아침", "점심", "간식", "저녁", "야식", "국물없음", "안매움", "혼자", "여럿이"}},
	{Name: "치킨", Tags: []string{"저녁", "야식", "국물없음", "안매움", "여럿이"}},
	{Name: "양꼬치", Tags: []string{"저녁", "회식", "국물없음", "안매움", "여럿이", "데이트"}},
	{Name: "마라탕", Tags: []string{"점심", "저녁", "국물있음", "야식", "매움", "혼자", "여럿이", "데이트"}},
	{Name: "콩나물국밥", Tags: []string{"아침", "점심", "저녁", "야식", "국물있음", "안매움", "혼자", "여럿이", "다이어트"}},
	{Name: "버섯전골", Tags: []string{"점심", "저녁", "국물있음", "안매움", "여럿이", "다이어트"}},
	{Name: "비지찌개", Tags: []string{"아침", "점심", "국물있음", "안매움", "혼자", "여럿이", "다이어트"}},
	{Name: "비빔밥", Tags: []string{"점심", "아침", "국물없음", "안매움", "혼자", "여럿이", "다이어트"}},
	{Name: "채소쌈밥", Tags: []string{"점심", "아침", "국물없음", "안매움", "혼자", "여럿이", "다이어트"}},
	{Name: "두부조림", Tags: []string{"점심", "저녁", "국물있음", "매움", "안매움", "혼자", "여럿이", "다이어트"}},
	{Name: "샐러드", Tags: []string{"아침", "점심", "간식", "국물없음", "혼자", "안매움", "다이어트"}},
	{Name: "족발", Tags: []string{"저녁", "야식", "국물없음", "여럿이", "혼자", "안매움"}},
	{Name: "불족발", Tags: []string{"저녁", "야식", "국물없음", "여럿이", "혼자", "매움"}},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultEntries...)
}
