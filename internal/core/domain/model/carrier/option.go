package carrier

// Option describes a carrier offer shown to callers choosing how to ship:
// service description, base price, typical delivery window, and rating.
// The table is static marketing data, not live quotes.
type Option struct {
	Carrier       Carrier
	Description   string
	BasePrice     int
	EstimatedTime string
	Rating        float64
}

// Options returns the carriers selectable for scheduling, in display order.
func Options() []Option {
	return []Option{
		{
			Carrier:       Huolala,
			Description:   "专业的同城/跨城货运服务，提供各类车型选择",
			BasePrice:     1800,
			EstimatedTime: "1-2天",
			Rating:        4.8,
		},
		{
			Carrier:       Yunmanman,
			Description:   "全国性物流服务平台，覆盖各类货物运输需求",
			BasePrice:     2200,
			EstimatedTime: "2-3天",
			Rating:        4.7,
		},
		{
			Carrier:       STO,
			Description:   "适合小件设备及配件运输，全国网点覆盖广",
			BasePrice:     800,
			EstimatedTime: "3-5天",
			Rating:        4.5,
		},
		{
			Carrier:       Yunda,
			Description:   "经济实惠的运输服务，适合非紧急货物",
			BasePrice:     700,
			EstimatedTime: "4-6天",
			Rating:        4.4,
		},
	}
}
