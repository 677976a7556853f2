package services

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

var adminEmailTemplate = htmltemplate.Must(htmltemplate.New("admin_email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
  <div style="background: #d97706; color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1 style="margin: 0; font-size: 28px;">New Order Received!</h1>
    <p style="margin: 10px 0 0;">Order ID: <strong>{{.Order.OrderId}}</strong></p>
  </div>
  <div style="background: white; padding: 30px; border-radius: 0 0 10px 10px;">
    <h2 style="color: #d97706; margin-top: 0;">Customer Details</h2>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td><strong>Name:</strong></td><td>{{.Order.CustomerName}}</td></tr>
      <tr><td><strong>WhatsApp:</strong></td><td>{{.Order.Whatsapp}}</td></tr>
      {{- if .Order.Email}}
      <tr><td><strong>Email:</strong></td><td>{{.Order.Email}}</td></tr>
      {{- end}}
      <tr><td><strong>Address:</strong></td><td>{{.Order.Address}}</td></tr>
      <tr><td><strong>Pincode:</strong></td><td>{{.Order.Pincode}}</td></tr>
      <tr><td><strong>State:</strong></td><td>{{.Order.State}}</td></tr>
    </table>
    <h2 style="color: #d97706; margin-top: 30px;">Order Details</h2>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td><strong>Product:</strong></td><td>{{.Product}}</td></tr>
      {{- if .Order.Orientation}}
      <tr><td><strong>Orientation:</strong></td><td>{{.Order.Orientation}}</td></tr>
      {{- end}}
      <tr><td><strong>Quantity:</strong></td><td>{{.Order.Quantity}} pieces</td></tr>
      <tr><td><strong>Total Price:</strong></td><td>₹{{.Order.TotalPrice}}</td></tr>
      <tr><td><strong>Delivery:</strong></td><td>₹{{.Order.DeliveryCharge}}</td></tr>
      {{- if .Order.CouponApplied}}
      <tr><td><strong>Coupon:</strong></td><td>{{.Order.CouponApplied}} (-₹{{.Order.Discount}})</td></tr>
      {{- end}}
      <tr><td><strong>Final Amount:</strong></td><td><strong style="color: #d97706;">₹{{.Order.FinalAmount}}</strong></td></tr>
    </table>
    <div style="text-align: center; margin: 30px 0;">
      <img src="{{.Order.CroppedImageUrl}}" alt="Customer Photo" style="max-width: 300px; border-radius: 10px;" />
    </div>
    <div style="text-align: center; margin-top: 30px;">
      <a href="{{.ConfirmURL}}" style="display: inline-block; padding: 15px 40px; background: #d97706; color: white; text-decoration: none; border-radius: 8px; font-weight: bold;">Confirm Order &amp; Notify Customer</a>
    </div>
  </div>
</div>`))

var customerEmailTemplate = htmltemplate.Must(htmltemplate.New("customer_email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
  <div style="background: #d97706; color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1 style="margin: 0; font-size: 28px;">Order Confirmed!</h1>
    <p style="margin: 10px 0 0;">Thank you for your order</p>
  </div>
  <div style="background: white; padding: 30px; border-radius: 0 0 10px 10px;">
    <p>Dear {{.Order.CustomerName}},</p>
    <p>Your order has been confirmed and is being processed!</p>
    <p><strong>Order ID:</strong> {{.Order.OrderId}}</p>
    <h2 style="color: #d97706;">Order Summary</h2>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td><strong>Product:</strong></td><td>{{.Product}}</td></tr>
      <tr><td><strong>Quantity:</strong></td><td>{{.Order.Quantity}} pieces</td></tr>
      <tr><td><strong>Total Amount Paid:</strong></td><td><strong style="color: #d97706;">₹{{.Order.FinalAmount}}</strong></td></tr>
    </table>
    <div style="text-align: center; margin: 30px 0;">
      <img src="{{.Order.CroppedImageUrl}}" alt="Your Photo" style="max-width: 300px; border-radius: 10px;" />
    </div>
    <div style="background: #f3f4f6; padding: 20px; border-radius: 8px;">
      <h3 style="margin: 0 0 10px;">Delivery Address:</h3>
      <p style="margin: 0;">{{.Order.Address}}</p>
      <p style="margin: 5px 0 0;">{{.Order.Pincode}}, {{.Order.State}}</p>
    </div>
    {{- if .SupportEmail}}
    <p style="color: #6b7280; font-size: 14px; text-align: center;">For any queries, contact us at: {{.SupportEmail}}</p>
    {{- end}}
  </div>
</div>`))

var adminSmsTemplate = texttemplate.Must(texttemplate.New("admin_sms").Parse(`🎉 New Order Received!

Order ID: {{.Order.OrderId}}
Customer: {{.Order.CustomerName}}
Phone: {{.Order.Whatsapp}}
Product: {{.Product}}
Quantity: {{.Order.Quantity}}
Amount: ₹{{.Order.FinalAmount}}

Check admin panel for details and confirm order.`))

var customerSmsTemplate = texttemplate.Must(texttemplate.New("customer_sms").Parse(`✅ Order Confirmed!

Dear {{.Order.CustomerName}},

Your order ({{.Order.OrderId}}) has been confirmed and is being processed.

Product: {{.Product}}
Quantity: {{.Order.Quantity}}
Amount Paid: ₹{{.Order.FinalAmount}}

We'll notify you when your order is shipped.

Thank you for choosing Photo Magnet Celebrations! 🎉`))
