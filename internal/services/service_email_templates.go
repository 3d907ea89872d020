package services

// Mail bodies follow the site's existing confirmation mails: a header band,
// team/leader/member cards, the event list with the four fee figures, and a
// pending-payment notice.

const registrationHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Registration Confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 28px;">Registration Confirmed! 🎉</h1>
  </div>

  <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
    <p style="font-size: 16px;">Hi <strong>{{.LeaderName}}</strong>,</p>

    <p style="font-size: 16px;">
      Thank you for registering for Gantavya! Your registration has been successfully received.
    </p>

    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; border-left: 4px solid #667eea;">
      <h2 style="color: #667eea; margin-top: 0; font-size: 20px;">Team Details</h2>
      <p style="margin: 5px 0;"><strong>Team Name:</strong> {{.TeamName}}</p>
      <p style="margin: 5px 0;"><strong>College:</strong> {{.College}}</p>
      <p style="margin: 5px 0;"><strong>Total Members:</strong> {{inc (len .Members)}}</p>
      {{if .RegistrationID}}<p style="margin: 5px 0;"><strong>Registration ID:</strong> {{.RegistrationID}}</p>{{end}}
    </div>

    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; border-left: 4px solid #764ba2;">
      <h2 style="color: #764ba2; margin-top: 0; font-size: 20px;">Leader Details</h2>
      <p style="margin: 5px 0;"><strong>Name:</strong> {{.LeaderName}}</p>
      <p style="margin: 5px 0;"><strong>Email:</strong> {{.LeaderEmail}}</p>
      <p style="margin: 5px 0;"><strong>Phone:</strong> {{.LeaderPhone}}</p>
    </div>

    {{if .Members}}
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; border-left: 4px solid #48bb78;">
      <h2 style="color: #48bb78; margin-top: 0; font-size: 20px;">Team Members</h2>
      {{range $i, $m := .Members}}
      <div style="margin-bottom: 15px; padding-bottom: 15px; border-bottom: 1px solid #e2e8f0;">
        <p style="margin: 5px 0; font-weight: bold;">Member {{inc $i}}</p>
        <p style="margin: 5px 0;"><strong>Name:</strong> {{$m.Name}}</p>
        <p style="margin: 5px 0;"><strong>Email:</strong> {{$m.Email}}</p>
        <p style="margin: 5px 0;"><strong>Phone:</strong> {{$m.Phone}}</p>
      </div>
      {{end}}
    </div>
    {{end}}

    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; border-left: 4px solid #f6ad55;">
      <h2 style="color: #f6ad55; margin-top: 0; font-size: 20px;">Selected Events</h2>
      {{range .Events}}
      <div style="display: flex; justify-content: space-between; margin-bottom: 10px; padding: 10px; background: #fafafa; border-radius: 4px;">
        <span>{{.Name}}</span>
        <span style="font-weight: bold;">₹{{inr .Price}}</span>
      </div>
      {{end}}

      <div style="margin-top: 20px; padding-top: 20px; border-top: 2px solid #e2e8f0;">
        <div style="display: flex; justify-content: space-between; margin-bottom: 8px;">
          <span>Subtotal:</span><span>₹{{inr .TotalAmount}}</span>
        </div>
        <div style="display: flex; justify-content: space-between; margin-bottom: 8px;">
          <span>Platform Fee (2%):</span><span>₹{{inr .PlatformFee}}</span>
        </div>
        <div style="display: flex; justify-content: space-between; margin-bottom: 8px;">
          <span>GST (18%):</span><span>₹{{inr .GST}}</span>
        </div>
        <div style="display: flex; justify-content: space-between; font-size: 18px; font-weight: bold; margin-top: 15px; padding-top: 15px; border-top: 2px solid #667eea; color: #667eea;">
          <span>Total Amount:</span><span>₹{{inr .FinalAmount}}</span>
        </div>
      </div>
    </div>

    <div style="background: #fff3cd; border: 1px solid #ffc107; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="margin-top: 0; color: #856404; font-size: 16px;">⏳ Next Steps</h3>
      <p style="margin: 5px 0; color: #856404;">
        Your registration is currently <strong>pending payment</strong>. Please complete the payment to confirm your spot in the events.
      </p>
    </div>

    <div style="background: white; padding: 20px; border-radius: 8px; border: 1px solid #e2e8f0;">
      <h3 style="margin-top: 0; color: #333; font-size: 16px;">Need Help?</h3>
      <p style="margin: 5px 0;">
        If you have any questions or need assistance, feel free to contact us at
        <a href="mailto:support@gantavya.com" style="color: #667eea; text-decoration: none;">support@gantavya.com</a>
      </p>
    </div>

    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0;">
      <p style="color: #666; font-size: 14px; margin: 0;">© {{year}} Gantavya. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`

const registrationText = `Registration Confirmation - Gantavya

Hi {{.LeaderName}},

Thank you for registering for Gantavya! Your registration has been successfully received.

Team Details:
- Team Name: {{.TeamName}}
- College: {{.College}}
- Total Members: {{inc (len .Members)}}
{{if .RegistrationID}}- Registration ID: {{.RegistrationID}}{{end}}

Leader Details:
- Name: {{.LeaderName}}
- Email: {{.LeaderEmail}}
- Phone: {{.LeaderPhone}}

Selected Events:
{{range .Events}}- {{.Name}}: ₹{{inr .Price}}
{{end}}
Cost Breakdown:
- Subtotal: ₹{{inr .TotalAmount}}
- Platform Fee (2%): ₹{{inr .PlatformFee}}
- GST (18%): ₹{{inr .GST}}
- Total Amount: ₹{{inr .FinalAmount}}

Next Steps:
Your registration is currently pending payment. Please complete the payment to confirm your spot in the events.

Need help? Contact us at support@gantavya.com

© {{year}} Gantavya. All rights reserved.`

const paymentHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Payment Successful</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #48bb78 0%, #38a169 100%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 28px;">Payment Successful! ✅</h1>
  </div>

  <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
    <p style="font-size: 16px;">Hi <strong>{{.LeaderName}}</strong>,</p>

    <p style="font-size: 16px;">
      Your payment has been successfully processed! Your team <strong>{{.TeamName}}</strong> is now registered for Gantavya.
    </p>

    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; border-left: 4px solid #48bb78;">
      <h2 style="color: #48bb78; margin-top: 0; font-size: 20px;">Payment Receipt</h2>
      <p style="margin: 5px 0;"><strong>Payment ID:</strong> {{.PaymentID}}</p>
      <p style="margin: 5px 0;"><strong>Order ID:</strong> {{.OrderID}}</p>
      <p style="margin: 5px 0;"><strong>Registration ID:</strong> {{.RegistrationID}}</p>
      <p style="margin: 5px 0;"><strong>Date:</strong> {{.PaymentDate}}</p>
      <p style="margin: 5px 0; font-size: 20px; color: #48bb78;"><strong>Amount Paid:</strong> ₹{{inr .Amount}}</p>
    </div>

    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; border-left: 4px solid #667eea;">
      <h2 style="color: #667eea; margin-top: 0; font-size: 20px;">Registered Events</h2>
      {{range .Events}}
      <div style="display: flex; justify-content: space-between; margin-bottom: 10px; padding: 10px; background: #fafafa; border-radius: 4px;">
        <span>{{.Name}}</span>
        <span style="font-weight: bold;">₹{{inr .Price}}</span>
      </div>
      {{end}}
    </div>

    <div style="background: #d4edda; border: 1px solid #28a745; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="margin-top: 0; color: #155724; font-size: 16px;">✅ What's Next?</h3>
      <ul style="margin: 10px 0; padding-left: 20px; color: #155724;">
        <li>You will receive further updates via email</li>
        <li>Keep this email for your records</li>
        <li>Bring a valid ID card on the event day</li>
        <li>Check our website for event schedules and rules</li>
      </ul>
    </div>

    <div style="background: white; padding: 20px; border-radius: 8px; border: 1px solid #e2e8f0;">
      <h3 style="margin-top: 0; color: #333; font-size: 16px;">Need Help?</h3>
      <p style="margin: 5px 0;">
        If you have any questions or need assistance, feel free to contact us at
        <a href="mailto:support@gantavya.com" style="color: #667eea; text-decoration: none;">support@gantavya.com</a>
      </p>
    </div>

    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0;">
      <p style="color: #666; font-size: 14px; margin: 0;">© {{year}} Gantavya. All rights reserved.</p>
      <p style="color: #999; font-size: 12px; margin-top: 10px;">This is an automated email. Please do not reply to this message.</p>
    </div>
  </div>
</body>
</html>`

const paymentText = `Payment Successful - Gantavya

Hi {{.LeaderName}},

Your payment has been successfully processed! Your team {{.TeamName}} is now registered for Gantavya.

Payment Receipt:
- Payment ID: {{.PaymentID}}
- Order ID: {{.OrderID}}
- Registration ID: {{.RegistrationID}}
- Date: {{.PaymentDate}}
- Amount Paid: ₹{{inr .Amount}}

Registered Events:
{{range .Events}}- {{.Name}}: ₹{{inr .Price}}
{{end}}
What's Next?
- You will receive further updates via email
- Keep this email for your records
- Bring a valid ID card on the event day
- Check our website for event schedules and rules

Need help? Contact us at support@gantavya.com

© {{year}} Gantavya. All rights reserved.`
