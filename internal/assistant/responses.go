package assistant

// Greeting はチャット開始時に表示する固定の挨拶メッセージ。
const Greeting = "Hello! I'm here to help you with health-related questions. How can I assist you today?"

// 各トピックの定型回答。内容は一般的な健康情報であり、
// 緊急時の注意書きは静的な文面であって通報などの副作用は持たない。

const headacheReply = `Headaches can have various causes:

• **Common causes**: Stress, dehydration, lack of sleep, eye strain, hunger
• **Immediate relief**: Rest in a dark, quiet room, apply cold compress to forehead, stay hydrated
• **When to see a doctor**: If headaches are severe, frequent (more than 2-3 times per week), or accompanied by fever, vision changes, or neck stiffness
• **Prevention**: Regular sleep schedule, stay hydrated, manage stress, avoid trigger foods

⚠️ Seek immediate medical attention if you have sudden, severe headache unlike any before.`

const backPainReply = `Back pain is very common, especially in seniors:

• **Common causes**: Poor posture, muscle strain, arthritis, herniated disc
• **Immediate relief**: Rest, apply heat or ice (whichever feels better), gentle stretching
• **Exercises**: Gentle walking, swimming, yoga can help strengthen back muscles
• **When to see a doctor**: If pain persists more than a few days, radiates down legs, or causes numbness
• **Prevention**: Maintain good posture, regular exercise, proper lifting techniques

⚠️ Seek immediate care if back pain follows an injury or is accompanied by fever.`

const bloodPressureReply = `Blood pressure management is crucial for heart health:

• **Normal range**: Less than 120/80 mmHg
• **High BP**: 140/90 mmHg or higher
• **Management**: Low-sodium diet, regular exercise, medication compliance, weight management
• **Monitoring**: Check regularly, keep a log, same time each day
• **Lifestyle**: Reduce salt, limit alcohol, quit smoking, manage stress
• **Diet**: DASH diet - fruits, vegetables, whole grains, lean proteins

⚠️ Always follow your doctor's recommendations for monitoring and treatment.`

const diabetesReply = `Diabetes management involves several key components:

• **Blood sugar monitoring**: Check levels as prescribed by your doctor
• **Diet**: Balanced meals, control carbohydrates, regular meal times
• **Exercise**: 30 minutes daily walking or approved activities
• **Medication**: Take as prescribed, never skip doses
• **Target levels**: Fasting 80-130 mg/dL, after meals less than 180 mg/dL
• **Warning signs**: Excessive thirst, frequent urination, blurred vision, fatigue

⚠️ Seek immediate care for very high (over 400) or very low (under 70) blood sugar levels.`

const jointPainReply = `Joint pain is common in seniors and can be managed:

• **Common causes**: Arthritis, wear and tear, inflammation
• **Relief methods**: Gentle exercise, heat/cold therapy, over-the-counter pain relievers
• **Exercises**: Swimming, walking, gentle stretching, tai chi
• **Diet**: Anti-inflammatory foods like fish, leafy greens, berries
• **When to see doctor**: Severe pain, swelling, redness, limited movement
• **Daily tips**: Maintain healthy weight, use supportive shoes, avoid prolonged sitting

⚠️ Consult your doctor before starting new exercises or medications.`

const sleepReply = `Good sleep is essential for health, especially for seniors:

• **Sleep needs**: 7-8 hours per night for most adults
• **Sleep hygiene**: Regular bedtime, cool dark room, comfortable mattress
• **Avoid**: Caffeine after 2 PM, large meals before bed, screens 1 hour before sleep
• **Helpful**: Warm bath, reading, gentle stretching, herbal tea
• **Common issues**: Frequent urination, medication side effects, sleep apnea
• **When to see doctor**: Persistent insomnia, loud snoring, daytime fatigue

⚠️ Don't use sleep medications without consulting your doctor.`

const chestPainReply = `⚠️ **CHEST PAIN REQUIRES IMMEDIATE MEDICAL ATTENTION**

Call emergency services (911) immediately if you experience:
• Chest pain or pressure
• Pain radiating to arm, jaw, or back
• Shortness of breath
• Nausea or sweating
• Dizziness

Do not drive yourself to the hospital. Call for emergency help immediately.

This could be a heart attack or other serious condition requiring immediate medical care.`

const medicationReply = `Medication management is crucial for seniors:

• **Organization**: Use pill organizers, set reminders
• **Timing**: Take medications at the same time daily
• **Food interactions**: Some need food, others empty stomach
• **Side effects**: Report any unusual symptoms to your doctor
• **Never**: Stop medications without consulting your doctor
• **Storage**: Keep in cool, dry place, check expiration dates
• **Questions**: Always ask your pharmacist or doctor about new medications

⚠️ Never share medications or change doses without medical supervision.`

const generalHealthReply = `Maintaining good health as a senior involves:

• **Regular check-ups**: Annual physical exams, screenings
• **Nutrition**: Balanced diet with fruits, vegetables, lean proteins
• **Exercise**: Regular physical activity appropriate for your fitness level
• **Social connections**: Stay connected with family and friends
• **Mental health**: Engage in activities you enjoy, manage stress
• **Safety**: Fall prevention, medication management
• **Preventive care**: Vaccinations, screenings as recommended

⚠️ Always consult your healthcare provider for personalized advice.`

// FallbackReply はどのトピックにも一致しない質問への固定回答。
// 医療従事者への相談を促す。
const FallbackReply = `Thank you for your question. I can provide general health information, but it's always best to consult with your healthcare provider for personalized medical advice.

For specific symptoms or concerns, please:
• Contact your doctor
• Call your healthcare provider's nurse line
• Visit an urgent care center if needed
• Call emergency services for serious symptoms

Your healthcare team can properly evaluate your specific situation and provide appropriate guidance.`
