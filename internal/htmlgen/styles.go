package htmlgen

const baseStyle = `
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'Pretendard','Apple SD Gothic Neo','Malgun Gothic',sans-serif;color:#333;line-height:1.6;background:#f7f7f9}
h1,h2,h3,h4{color:#222;font-weight:700}
.section{margin-bottom:32px}
.section-title{font-size:22px;padding-bottom:10px;margin-bottom:16px;border-bottom:2px solid #e5e5ea}
.info-row{display:flex;gap:12px;padding:6px 0}
.info-label{min-width:110px;color:#777;font-weight:600}
.info-value{flex:1}
ul{padding-left:20px}
li{margin:4px 0}
table{width:100%;border-collapse:collapse;margin:12px 0;font-size:14px}
th,td{border:1px solid #e1e1e6;padding:10px;text-align:center}
th{background:#f2f3f7;font-weight:600}
.hotel-image,.room-image{width:100%;max-height:420px;object-fit:cover;border-radius:8px;margin-bottom:16px}
.hotel-name{font-size:30px;margin-bottom:6px}
.hotel-rating{color:#f5b301;font-size:18px;margin-bottom:12px}
.hotel-rating .star-empty{color:#ccc}
.hotel-description{margin:12px 0 16px}
.room-name,.package-name,.lodge-name{font-size:18px;margin-bottom:8px}
.room-amenities li,.package-includes li{display:inline-block;margin:4px 6px 4px 0;padding:2px 10px;background:#eef1f8;border-radius:12px;list-style:none}
.package-price{font-size:20px;color:#d0342c;font-weight:700;margin-bottom:8px}
.price-row-label{font-weight:600;background:#fafafa}
.additional-charges,.additional-policy{margin-top:12px;padding:12px;background:#fff8e6;border-radius:6px;font-size:14px}
.cancel-season{font-size:16px;margin-top:16px}
.notice-item{padding:12px 16px;margin-bottom:10px;border-left:4px solid #4a6cf7;background:#f5f7ff}
.notice-important,.notice-warning{border-left-color:#d0342c;background:#fff3f2}
.default-section .placeholder{color:#999;font-style:italic}
.mock-data-warning{padding:16px;border:1px solid #f5c2c7;background:#f8d7da;color:#842029;border-radius:6px}
`

var detailStyle = baseStyle + `
.hotel-detail-container{max-width:960px;margin:0 auto;padding:32px 24px;background:#fff}
.room-info-section{padding:20px 0;border-bottom:1px solid #eee}
.room-info-section:last-child{border-bottom:none}
.package-item{padding:16px 0;border-bottom:1px solid #eee}
.lodge-price-section{margin-bottom:20px}
`

var cardStyle = baseStyle + `
.container{max-width:1100px;margin:0 auto;padding:24px}
.container>.section{background:#fff;border-radius:12px;box-shadow:0 2px 10px rgba(0,0,0,.06);padding:24px}
.rooms-container,.packages-info{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:16px}
.rooms-container>.section-title,.packages-info>.section-title{grid-column:1/-1}
.room-info-section,.package-item{border:1px solid #eee;border-radius:10px;padding:16px}
.facilities-container{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:16px}
.facilities-container>.section-title{grid-column:1/-1}
`
